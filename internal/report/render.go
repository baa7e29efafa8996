package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// RenderSheetHTML renders the worksheet template into a string.
func RenderSheetHTML(ctx context.Context, sheet Sheet) (string, error) {
	var builder strings.Builder
	if err := SheetPage(sheet).Render(ctx, &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}

// WriteSheet renders sheet to path, creating parent directories.
func WriteSheet(ctx context.Context, path string, sheet Sheet) error {
	html, err := RenderSheetHTML(ctx, sheet)
	if err != nil {
		return fmt.Errorf("render sheet: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write sheet: %w", err)
	}
	return nil
}
