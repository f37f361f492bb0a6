package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/unitkit/unitkit-go/pkg/log"
)

// RunExport exports an engine log file to JSONL, optionally filtered
// by session ID.
func RunExport(path, output, sessionID string) error {
	reader, err := log.NewFilteredReader(path, log.Filter{SessionID: sessionID})
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(event); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
	return nil
}
