package topics

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/rs/zerolog"
)

// readToken reads one whitespace-delimited token. Leading whitespace is
// skipped and the delimiter after the token is left unread. EOF ends the
// token; EOF before any token yields "" and no error.
func readToken(in io.RuneScanner) (string, error) {
	var sb strings.Builder
	for {
		r, _, err := in.ReadRune()
		if err == io.EOF {
			return sb.String(), nil
		}
		if err != nil {
			return sb.String(), err
		}
		if unicode.IsSpace(r) {
			if sb.Len() == 0 {
				continue
			}
			if err := in.UnreadRune(); err != nil {
				return sb.String(), err
			}
			return sb.String(), nil
		}
		sb.WriteRune(r)
	}
}

func logAcknowledgment(logger zerolog.Logger, token string) {
	if token == "" {
		logger.Debug().Msg("Input exhausted, continuing without acknowledgment")
		return
	}
	if _, err := strconv.Atoi(token); err != nil {
		logger.Debug().Str("token", token).Msg("Non-numeric acknowledgment accepted")
		return
	}
	logger.Trace().Str("token", token).Msg("Acknowledged")
}
