package routeros

import (
	"crypto/md5" //nolint:gosec
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

func (s *Session) login(username, password string) error {
	ret, err := s.runLogin("=name="+username, "=password="+password)
	if err != nil {
		return err
	}

	if ret == "" {
		// Login method post-6.43 one stage, cleartext and no challenge
		return nil
	}

	// Login method pre-6.43 two stages, challenge
	challenge, err := hex.DecodeString(ret)
	if err != nil {
		return fmt.Errorf("%w: hex decoding ret field: %w", ErrLoginChallenge, err)
	}

	response := challengeResponse(challenge, password)
	_, err = s.runLogin("=name="+username, "=response="+response)
	return err
}

// runLogin sends a login sentence and returns the ret attribute
// of its done reply, if any.
func (s *Session) runLogin(words ...string) (ret string, err error) {
	records, err := s.Query("/login", words...)
	if err != nil {
		return "", err
	}

	err = records.Close()
	var trapErr *TrapError
	switch {
	case errors.As(err, &trapErr):
		return "", fmt.Errorf("%w: %s", ErrAuthentication, trapErr.Message())
	case err != nil:
		return "", err
	}

	return records.Done().Get("ret"), nil
}

func challengeResponse(challenge []byte, password string) string {
	hasher := md5.New() //nolint:gosec
	_, _ = hasher.Write([]byte{0})
	_, _ = io.WriteString(hasher, password)
	_, _ = hasher.Write(challenge)
	return fmt.Sprintf("00%x", hasher.Sum(nil))
}
