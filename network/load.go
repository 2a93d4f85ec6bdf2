package network

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lvroute/core"
)

// Format identifies an on-disk network representation.
type Format string

const (
	FormatText   Format = "text"
	FormatYAML   Format = "yaml"
	FormatHCL    Format = "hcl"
	FormatSQLite Format = "sqlite"
)

// DetectFormat maps a file extension to a Format.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".csv":
		return FormatText, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".hcl":
		return FormatHCL, nil
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// Load reads the network stored at path, choosing the parser by extension.
// A nil logger discards parser warnings.
func Load(ctx context.Context, path string, logger *slog.Logger) (Network, error) {
	logger = orDiscard(logger)

	format, err := DetectFormat(path)
	if err != nil {
		return Network{}, err
	}

	// 1) Fail early on a missing file; sql.Open would otherwise create one.
	if _, err := os.Stat(path); err != nil {
		return Network{}, fmt.Errorf("opening network: %w", err)
	}
	logger.Debug("loading network", "path", path, "format", format)

	var n Network
	switch format {
	case FormatText, FormatYAML:
		f, err := os.Open(path) //nolint:gosec // path is operator-supplied
		if err != nil {
			return Network{}, fmt.Errorf("opening network: %w", err)
		}
		defer f.Close() //nolint:errcheck // read-only
		if format == FormatText {
			n, err = ParseText(f, logger)
		} else {
			n, err = ParseYAML(f)
		}
		if err != nil {
			return Network{}, fmt.Errorf("%s: %w", path, err)
		}
	case FormatHCL:
		src, err := os.ReadFile(path) //nolint:gosec // path is operator-supplied
		if err != nil {
			return Network{}, fmt.Errorf("reading network: %w", err)
		}
		if n, err = ParseHCL(src, path); err != nil {
			return Network{}, err
		}
	case FormatSQLite:
		store, err := NewSQLiteStore(path)
		if err != nil {
			return Network{}, err
		}
		defer store.Close() //nolint:errcheck // best-effort cleanup
		if err = store.Init(ctx); err != nil {
			return Network{}, fmt.Errorf("%s: initializing database: %w", path, err)
		}
		if n, err = store.Load(ctx); err != nil {
			return Network{}, fmt.Errorf("%s: %w", path, err)
		}
	}

	logger.Info("network loaded", "path", path, "cities", len(n.Cities), "routes", len(n.Records))

	return n, nil
}

// LoadGraph is Load followed by Network.Graph.
func LoadGraph(ctx context.Context, path string, logger *slog.Logger) (*core.Graph, error) {
	n, err := Load(ctx, path, logger)
	if err != nil {
		return nil, err
	}

	return n.Graph()
}
