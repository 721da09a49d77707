package launchboard

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
)

// ExportStaticProps writes the page props as indented JSON, in the
// {"props": {"launches": [...]}} shape the page is rendered from.
func (s *Site) ExportStaticProps(ctx context.Context, w io.Writer) error {
	props, err := s.StaticProps(ctx)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(props); err != nil {
		return fmt.Errorf("failed to encode export data: %w", err)
	}

	return nil
}
