package pagination

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"
)

// Token is the decoded form of a continuation token. It identifies the last
// row of the previous page plus the scalar values needed to re-derive the
// keyset predicate for one sort key.
type Token struct {
	ID        string                // Unique id of the last row served
	SortBy    string                // Sort key the token was minted under
	Timestamp int64                 // Mint time, unix milliseconds
	Fields    map[string]FieldValue // Cursor field values for the sort key
}

// tokenPayload is the JSON wire shape of a token. Pointer fields let decode
// distinguish "absent" from "zero value"; a payload missing any top-level
// field is invalid.
type tokenPayload struct {
	ID        *string               `json:"id"`
	SortBy    *string               `json:"sortBy"`
	Timestamp *int64                `json:"timestamp"`
	Fields    map[string]FieldValue `json:"fields"`
}

// Codec encodes and decodes signed, expiring continuation tokens.
//
// Wire format: base64url(JSON payload) + "." + hex(HMAC-SHA256(encoded
// payload, secret)). The token is signed, not encrypted: it is tamper
// evident but its contents are readable by anyone. Never put anything
// secret in a cursor field.
//
// The signing secret is read-only after construction, so a single Codec may
// be shared across concurrent requests without locking.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCodec creates a token codec. A non-positive ttl falls back to the
// 60 minute default.
func NewCodec(secret []byte, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Codec{secret: secret, ttl: ttl, now: time.Now}
}

// Encode serializes and signs a token. The token's SortBy is overwritten
// with the given sort key and the timestamp is stamped with the current
// time, so two tokens minted for the same row at different times never
// collide.
func (c *Codec) Encode(tok Token, sortBy string) string {
	id := tok.ID
	ts := c.now().UnixMilli()
	payload := tokenPayload{
		ID:        &id,
		SortBy:    &sortBy,
		Timestamp: &ts,
		Fields:    tok.Fields,
	}
	if payload.Fields == nil {
		payload.Fields = map[string]FieldValue{}
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		// Payload is built from plain scalars; marshalling cannot fail.
		return ""
	}
	encoded := base64.RawURLEncoding.EncodeToString(raw)
	return encoded + "." + c.sign(encoded)
}

// Decode verifies and parses a token. It returns ok=false for any defect:
// bad structure, signature mismatch, missing or mistyped payload fields,
// expiry past the TTL, or a sort key differing from expectedSortBy (the
// caller changed sort under an old cursor). Callers must treat every
// failure the same way; the repository template degrades to page one.
func (c *Codec) Decode(raw, expectedSortBy string) (Token, bool) {
	if raw == "" {
		return Token{}, false
	}

	dot := strings.LastIndex(raw, ".")
	if dot <= 0 || dot == len(raw)-1 {
		RecordInvalidCursor("malformed")
		return Token{}, false
	}
	encoded, sig := raw[:dot], raw[dot+1:]

	if !c.verify(encoded, sig) {
		RecordInvalidCursor("signature")
		return Token{}, false
	}

	data, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		RecordInvalidCursor("malformed")
		return Token{}, false
	}

	var payload tokenPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		RecordInvalidCursor("malformed")
		return Token{}, false
	}
	if payload.ID == nil || payload.SortBy == nil || payload.Timestamp == nil || payload.Fields == nil {
		RecordInvalidCursor("malformed")
		return Token{}, false
	}

	issuedAt := time.UnixMilli(*payload.Timestamp)
	if c.now().Sub(issuedAt) > c.ttl {
		RecordInvalidCursor("expired")
		return Token{}, false
	}

	if *payload.SortBy != expectedSortBy {
		RecordInvalidCursor("sort_mismatch")
		return Token{}, false
	}

	return Token{
		ID:        *payload.ID,
		SortBy:    *payload.SortBy,
		Timestamp: *payload.Timestamp,
		Fields:    payload.Fields,
	}, true
}

// sign computes the hex HMAC-SHA256 of the encoded payload.
func (c *Codec) sign(encoded string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(encoded))
	return hex.EncodeToString(mac.Sum(nil))
}

// verify checks a signature in constant time.
func (c *Codec) verify(encoded, sig string) bool {
	got, err := hex.DecodeString(sig)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(encoded))
	return hmac.Equal(mac.Sum(nil), got)
}
