package service

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-zone-keeper/internal/utils"
	"github.com/MKhiriev/go-zone-keeper/models"
)

const changeTokenSeparator = '|'

// changeTokenCodec mints and verifies zone change tokens. A token is the
// base64url form of "owner|zone|seq|signature", signed with the server hash
// key, so clients can neither forge a position nor reuse a token on another
// zone.
type changeTokenCodec struct {
	hasher *utils.Hasher
}

func newChangeTokenCodec(hashKey string) *changeTokenCodec {
	return &changeTokenCodec{hasher: utils.NewHasher(hashKey)}
}

func (c *changeTokenCodec) encode(zoneID models.ZoneID, seq int64) models.ChangeToken {
	payload := tokenPayload(zoneID, seq)
	signature := hex.EncodeToString(c.hasher.Sum(payload))

	raw := append(payload, changeTokenSeparator)
	raw = append(raw, signature...)

	return models.ChangeToken(base64.RawURLEncoding.EncodeToString(raw))
}

// decode returns the change sequence carried by token. An empty token
// decodes to zero, the position before the first change.
func (c *changeTokenCodec) decode(zoneID models.ZoneID, token models.ChangeToken) (int64, error) {
	if len(token) == 0 {
		return 0, nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(string(token))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidChangeToken, err)
	}

	i := bytes.LastIndexByte(raw, changeTokenSeparator)
	if i < 0 {
		return 0, fmt.Errorf("%w: malformed", ErrInvalidChangeToken)
	}
	payload, signatureHex := raw[:i], raw[i+1:]

	signature, err := hex.DecodeString(string(signatureHex))
	if err != nil || !c.hasher.Verify(payload, signature) {
		return 0, fmt.Errorf("%w: bad signature", ErrInvalidChangeToken)
	}

	prefix := tokenPayload(zoneID, 0)
	prefix = prefix[:len(prefix)-1]
	if !bytes.HasPrefix(payload, prefix) {
		return 0, fmt.Errorf("%w: issued for another zone", ErrInvalidChangeToken)
	}

	seq, err := strconv.ParseInt(string(payload[len(prefix):]), 10, 64)
	if err != nil || seq < 0 {
		return 0, fmt.Errorf("%w: bad position", ErrInvalidChangeToken)
	}

	return seq, nil
}

func tokenPayload(zoneID models.ZoneID, seq int64) []byte {
	payload := make([]byte, 0, len(zoneID.OwnerName)+len(zoneID.ZoneName)+24)
	payload = append(payload, zoneID.OwnerName...)
	payload = append(payload, changeTokenSeparator)
	payload = append(payload, zoneID.ZoneName...)
	payload = append(payload, changeTokenSeparator)
	return strconv.AppendInt(payload, seq, 10)
}
