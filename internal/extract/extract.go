package extract

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/vk/langtags/internal/ctxlog"
	"github.com/vk/langtags/internal/stringtable"
)

// Tags reads the first record of the CSV file at inputPath, filters it down
// to its language tags with the default reserved column set, and writes them
// to outputPath.
func Tags(ctx context.Context, inputPath, outputPath string) error {
	return TagsReserved(ctx, inputPath, outputPath, stringtable.ReservedDefault())
}

// TagsReserved extracts language tags with a caller-supplied reserved column
// set. The output file holds one tag per line, joined by single newlines with
// no trailing newline; an input with zero records produces a zero-byte file.
// The output file is created or truncated only after the input has been read
// successfully.
func TagsReserved(ctx context.Context, inputPath, outputPath string, reserved []string) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Extracting language tags.", "input", inputPath, "output", outputPath)

	in, err := os.Open(inputPath)
	if err != nil {
		return err
	}

	header, err := stringtable.ParseHeader(in)
	in.Close()
	if err != nil {
		return fmt.Errorf("failed to parse header of %s: %w", inputPath, err)
	}

	tags := stringtable.Tags(header, reserved)
	logger.Debug("Header row filtered.", "fields", len(header), "tags", len(tags))

	if err := os.WriteFile(outputPath, []byte(strings.Join(tags, "\n")), 0644); err != nil {
		return err
	}

	logger.Debug("Tag list written.", "path", outputPath, "count", len(tags))
	return nil
}
