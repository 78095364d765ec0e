// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	neturl "net/url"
	"strconv"
	"strings"

	"github.com/danielhkuo/quickly-vote/models"
)

const (
	UrlElection      = "/election"
	UrlVoters        = "/voters"
	UrlVoter         = "/voters/{identity}"
	UrlWorkflow      = "/workflow/{step}"
	UrlProposals     = "/proposals"
	UrlProposal      = "/proposals/{index}"
	UrlVotes         = "/votes"
	UrlResults       = "/results"
	UrlEvents        = "/events"
	UrlHealth        = "/health"
	StepStartPropose = "start-proposals"
	StepEndPropose   = "end-proposals"
	StepStartVoting  = "start-voting"
	StepEndVoting    = "end-voting"
)

// Error is a non-2xx answer from the server.
type Error struct {
	StatusCode int
	models.ErrorResponse
}

func (e Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%d %s", e.StatusCode, e.ErrorResponse.Error)
	}
	return fmt.Sprintf("%d %s: %s", e.StatusCode, e.ErrorResponse.Error, e.Message)
}

// Client talks to one Quickly Vote server as one identity. Identity and Key
// may be empty for public endpoints.
type Client struct {
	URL      string
	Identity string
	Key      string

	HTTP *http.Client
}

func NewClient(url, identity, key string) *Client {
	return &Client{
		URL:      strings.TrimRight(url, "/"),
		Identity: identity,
		Key:      key,
		HTTP:     http.DefaultClient,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, response interface{}) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.URL+path, &buf)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Identity != "" {
		req.Header.Set(models.HeaderIdentity, c.Identity)
		req.Header.Set(models.HeaderIdentityKey, c.Key)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	return toResponse(resp, response)
}

func toResponse(resp *http.Response, response interface{}) error {
	defer resp.Body.Close()
	decoder := json.NewDecoder(resp.Body)

	if !(resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices) {
		e := Error{StatusCode: resp.StatusCode}
		if err := decoder.Decode(&e.ErrorResponse); err != nil {
			e.ErrorResponse.Error = http.StatusText(resp.StatusCode)
		}
		return e
	}
	if response == nil {
		return nil
	}
	return decoder.Decode(response)
}

// Health returns nil when the server answers its liveness probe.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL+UrlHealth, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Error{StatusCode: resp.StatusCode, ErrorResponse: models.ErrorResponse{Error: http.StatusText(resp.StatusCode)}}
	}
	return nil
}

func (c *Client) Election(ctx context.Context) (resp models.ElectionResponse, err error) {
	err = c.do(ctx, http.MethodGet, UrlElection, nil, &resp)
	return
}

func (c *Client) RegisterVoter(ctx context.Context, identity string) (resp models.RegisterVoterResponse, err error) {
	err = c.do(ctx, http.MethodPost, UrlVoters, models.RegisterVoterRequest{Identity: identity}, &resp)
	return
}

func (c *Client) Voter(ctx context.Context, identity string) (resp models.VoterResponse, err error) {
	url := strings.Replace(UrlVoter, "{identity}", neturl.PathEscape(identity), -1)
	err = c.do(ctx, http.MethodGet, url, nil, &resp)
	return
}

// Advance runs one of the Step* workflow transitions.
func (c *Client) Advance(ctx context.Context, step string) (resp models.WorkflowResponse, err error) {
	url := strings.Replace(UrlWorkflow, "{step}", step, -1)
	err = c.do(ctx, http.MethodPost, url, nil, &resp)
	return
}

func (c *Client) Tally(ctx context.Context) (resp models.TallyResponse, err error) {
	url := strings.Replace(UrlWorkflow, "{step}", "tally", -1)
	err = c.do(ctx, http.MethodPost, url, nil, &resp)
	return
}

func (c *Client) SubmitProposal(ctx context.Context, description string) (resp models.SubmitProposalResponse, err error) {
	err = c.do(ctx, http.MethodPost, UrlProposals, models.SubmitProposalRequest{Description: description}, &resp)
	return
}

func (c *Client) Proposal(ctx context.Context, index int) (resp models.ProposalResponse, err error) {
	url := strings.Replace(UrlProposal, "{index}", strconv.Itoa(index), -1)
	err = c.do(ctx, http.MethodGet, url, nil, &resp)
	return
}

func (c *Client) Proposals(ctx context.Context) (resp models.ProposalsResponse, err error) {
	err = c.do(ctx, http.MethodGet, UrlProposals, nil, &resp)
	return
}

func (c *Client) Vote(ctx context.Context, index int) (resp models.CastVoteResponse, err error) {
	err = c.do(ctx, http.MethodPost, UrlVotes, models.CastVoteRequest{ProposalID: &index}, &resp)
	return
}

func (c *Client) Results(ctx context.Context) (resp models.ResultsResponse, err error) {
	err = c.do(ctx, http.MethodGet, UrlResults, nil, &resp)
	return
}

// Events returns the notifications after the given sequence number.
func (c *Client) Events(ctx context.Context, after uint64) (resp models.EventsResponse, err error) {
	q := neturl.Values{}
	q.Set("after", strconv.FormatUint(after, 10))
	err = c.do(ctx, http.MethodGet, UrlEvents+"?"+q.Encode(), nil, &resp)
	return
}
