package report

import (
	"encoding/json"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/keyhound/keyhound/internal/types"
)

// WriteJSON writes findings as a JSON array with the fixed field names
// {file, line, type, match, context}. An empty result is an empty array,
// never null.
func WriteJSON(w io.Writer, findings []types.Finding) error {
	if findings == nil {
		findings = []types.Finding{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(findings)
}

// Render is any serializer that writes findings to a stream.
type Render func(w io.Writer, findings []types.Finding) error

// WriteFile renders findings to path, falling back to fallback when the
// file cannot be created or written. A write failure never invalidates
// the scan itself.
func WriteFile(path string, findings []types.Finding, render Render, fallback io.Writer) error {
	f, err := os.Create(path)
	if err != nil {
		log.Error().Err(err).Str("file", path).Msg("cannot write results file, emitting to default stream")
		return render(fallback, findings)
	}
	defer f.Close()
	if err := render(f, findings); err != nil {
		log.Error().Err(err).Str("file", path).Msg("results write failed, emitting to default stream")
		return render(fallback, findings)
	}
	log.Info().Str("file", path).Int("findings", len(findings)).Msg("results written")
	return nil
}
