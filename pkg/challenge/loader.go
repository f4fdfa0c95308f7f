package challenge

import (
	"os"
	"path/filepath"

	"github.com/plfanzen/plfanzen/pkg/compose"
	"github.com/plfanzen/plfanzen/pkg/log"
	"github.com/plfanzen/plfanzen/pkg/metrics"
	"github.com/plfanzen/plfanzen/pkg/template"
	"github.com/plfanzen/plfanzen/pkg/types"
)

const (
	// ComposeFileName is the manifest at the root of every challenge
	// directory.
	ComposeFileName = "docker-compose.yml"
	// ChallengesDir is the subdirectory of the working tree that holds
	// one directory per challenge, named by challenge id.
	ChallengesDir = "challs"
)

// Challenge is one fully rendered challenge: its metadata, the parsed
// compose document and the scratch directory holding the rendered tree.
type Challenge struct {
	ID       string
	Metadata *Metadata
	Compose  *compose.Document

	// Dir is the rendered scratch directory. Translation resolves
	// env_file references against it and attachment reads come from it.
	// Close removes it.
	Dir string

	// Export holds the sanitized source archive when the challenge was
	// loaded with export enabled.
	Export []byte
}

// Close removes the rendered scratch directory.
func (c *Challenge) Close() error {
	return os.RemoveAll(c.Dir)
}

// Startable reports whether the compose document declares anything that
// can actually run.
func (c *Challenge) Startable() bool {
	return len(c.Compose.Services) > 0 || len(c.Compose.VMs) > 0
}

// Load renders challs/<id> for the given actor into a fresh scratch
// directory and parses the resulting compose manifest. The caller owns the
// returned challenge and must Close it.
func Load(repoDir, id, actor string, isExport bool) (*Challenge, error) {
	src := filepath.Join(repoDir, ChallengesDir, id)
	info, err := os.Stat(src)
	if err != nil || !info.IsDir() {
		return nil, types.NewNotFound("Challenge %s not found", id)
	}

	scratch, err := os.MkdirTemp("", "challenge-"+id+"-")
	if err != nil {
		return nil, types.WrapInternal(err, "Failed to create scratch directory for challenge %s", id)
	}

	ch, err := loadRendered(scratch, src, id, actor, isExport)
	if err != nil {
		_ = os.RemoveAll(scratch)
		return nil, err
	}
	return ch, nil
}

func loadRendered(scratch, src, id, actor string, isExport bool) (*Challenge, error) {
	renderer := template.NewRenderer(actor, isExport)
	if err := renderer.RenderDir(src, scratch); err != nil {
		return nil, types.WrapInternal(err, "Failed to render challenge %s", id)
	}

	data, err := os.ReadFile(filepath.Join(scratch, ComposeFileName))
	if err != nil {
		return nil, types.WrapInternal(err, "Failed to read compose file of challenge %s", id)
	}
	doc, err := compose.Parse(data)
	if err != nil {
		return nil, types.WrapInternal(err, "Failed to parse compose file of challenge %s", id)
	}
	md, err := ParseMetadata(doc)
	if err != nil {
		return nil, types.WrapInternal(err, "Failed to load metadata of challenge %s", id)
	}

	ch := &Challenge{
		ID:       id,
		Metadata: md,
		Compose:  doc,
		Dir:      scratch,
	}
	if isExport {
		ch.Export, err = Pack(scratch)
		if err != nil {
			return nil, types.WrapInternal(err, "Failed to pack challenge %s for export", id)
		}
	}
	return ch, nil
}

// LoadAll renders every challenge in the working tree. A challenge that
// fails to load is logged, counted and dropped so one broken directory
// cannot take down enumeration.
func LoadAll(repoDir, actor string, isExport bool) (map[string]*Challenge, error) {
	entries, err := os.ReadDir(filepath.Join(repoDir, ChallengesDir))
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]*Challenge{}, nil
		}
		return nil, types.WrapInternal(err, "Failed to read challenges directory")
	}

	logger := log.WithComponent("challenge")
	out := make(map[string]*Challenge, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		id := entry.Name()
		ch, err := Load(repoDir, id, actor, isExport)
		if err != nil {
			metrics.ChallengeLoadFailures.WithLabelValues(id).Inc()
			logger.Warn().Str("challenge_id", id).Err(err).
				Msg("dropping challenge that failed to load")
			continue
		}
		out[id] = ch
	}
	metrics.ChallengesLoaded.Set(float64(len(out)))
	return out, nil
}

// CloseAll releases the scratch directories of a batch load.
func CloseAll(challenges map[string]*Challenge) {
	for _, c := range challenges {
		_ = c.Close()
	}
}
