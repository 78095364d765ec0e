// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides identity keys and ID generation.

# Identity Keys

Every participant, administrator included, proves its identity with an
HMAC-SHA256 key scoped to the election:

	key := auth.GenerateIdentityKey(electionID, identity, salt)
	err := auth.ValidateIdentityKey(electionID, identity, key, salt)

The key is URL-safe base64 encoded without padding. Since it's deterministic,
the same election, identity and salt always produce the same key. This allows
validation without storing keys in the database. The administrator hands
each voter its key when registering it.

# Identities

Identities are opaque strings (typically addresses):

	id, err := auth.NormalizeIdentity("  0xabc ")  // "0xabc"

# ID Generation

Election IDs are random UUIDs:

	id := auth.NewElectionID()
*/
package auth
