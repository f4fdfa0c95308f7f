package challenge

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/plfanzen/plfanzen/pkg/compose"
	"github.com/plfanzen/plfanzen/pkg/log"
	"github.com/plfanzen/plfanzen/pkg/script"
	"github.com/plfanzen/plfanzen/pkg/types"
)

// ErrMissingMetadata reports a compose file without the x-ctf-metadata
// extension. Such a directory is not a challenge.
var ErrMissingMetadata = errors.New("compose file does not declare x-ctf-metadata")

// Metadata is the decoded x-ctf-metadata extension of a challenge compose
// file. Exactly one of Flag and FlagValidationFn is set after parsing; when
// an author declares both, the literal flag wins.
type Metadata struct {
	Name          string   `yaml:"name"`
	Authors       []string `yaml:"authors"`
	DescriptionMD string   `yaml:"description_md"`
	Categories    []string `yaml:"categories"`
	// Attachments lists the file names that may be retrieved by players.
	Attachments []string `yaml:"attachments"`
	ReleaseTime *uint64  `yaml:"release_time"`
	EndTime     *uint64  `yaml:"end_time"`
	// AutoPublishSrc allows the challenge source to be exported.
	AutoPublishSrc bool   `yaml:"auto_publish_src"`
	Difficulty     string `yaml:"difficulty"`
	// DataPVCSize overrides the size of the shared challenge data volume.
	DataPVCSize        string                 `yaml:"data_pvc_size"`
	AdditionalMetadata map[string]interface{} `yaml:"additional_metadata"`

	// Flag is the literal flag string, if the challenge uses one.
	Flag *string `yaml:"flag"`
	// FlagValidationFn is a script body that calls
	// setFlagValidationFunction with a (submitted) -> bool function.
	FlagValidationFn *string `yaml:"flag_validation_fn"`
}

// ParseMetadata decodes and validates the x-ctf-metadata extension of a
// parsed compose document.
func ParseMetadata(doc *compose.Document) (*Metadata, error) {
	if !doc.HasMetadata() {
		return nil, ErrMissingMetadata
	}
	var md Metadata
	if err := doc.Metadata.Decode(&md); err != nil {
		return nil, types.WrapInternal(err, "Failed to parse x-ctf-metadata")
	}
	if md.Name == "" {
		return nil, types.NewInternal("x-ctf-metadata is missing required field name")
	}
	if md.Difficulty == "" {
		return nil, types.NewInternal("x-ctf-metadata is missing required field difficulty")
	}
	if md.Flag == nil && md.FlagValidationFn == nil {
		return nil, types.NewInternal("x-ctf-metadata must declare either flag or flag_validation_fn")
	}
	return &md, nil
}

// CheckFlag validates a submitted flag against the literal flag or the
// author's validation script.
func (m *Metadata) CheckFlag(submitted string) (bool, error) {
	if m.Flag != nil {
		return *m.Flag == submitted, nil
	}
	return script.CheckFlag(*m.FlagValidationFn, submitted)
}

// Password derives the deterministic per-instance password for the given
// purpose. With a fixed secret the result is stable across restarts and
// changes completely for any change of actor, instance or purpose. An
// empty secret falls back to the challenge's own flag material as the key,
// which keeps instances working but is predictable for anyone who solves
// the challenge.
func (m *Metadata) Password(secret []byte, actor, instanceID, purpose string) string {
	key := secret
	if len(key) == 0 {
		logger := log.WithComponent("challenge")
		logger.Warn().
			Msg("HMAC_SECRET_KEY is not set, deriving passwords from challenge data only. This is insecure!")
		if m.Flag != nil {
			key = []byte(*m.Flag)
		} else {
			key = []byte(*m.FlagValidationFn)
		}
	}
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(actor))
	mac.Write([]byte(instanceID))
	mac.Write([]byte(purpose))
	return hex.EncodeToString(mac.Sum(nil))[:16]
}

// Released reports whether the challenge is visible at the given unix
// timestamp. Challenges without a release time are always visible.
func (m *Metadata) Released(now uint64) bool {
	return m.ReleaseTime == nil || *m.ReleaseTime <= now
}

// HasAttachment reports whether the given file name is in the attachment
// allowlist.
func (m *Metadata) HasAttachment(name string) bool {
	for _, a := range m.Attachments {
		if a == name {
			return true
		}
	}
	return false
}

// ScriptObject returns the metadata view handed to scoring scripts. The
// flag material is deliberately absent so scripts cannot leak it.
func (m *Metadata) ScriptObject() map[string]interface{} {
	obj := map[string]interface{}{
		"name":             m.Name,
		"authors":          m.Authors,
		"description_md":   m.DescriptionMD,
		"categories":       m.Categories,
		"attachments":      m.Attachments,
		"auto_publish_src": m.AutoPublishSrc,
		"difficulty":       m.Difficulty,
	}
	if m.ReleaseTime != nil {
		obj["release_time"] = *m.ReleaseTime
	}
	if m.EndTime != nil {
		obj["end_time"] = *m.EndTime
	}
	if m.DataPVCSize != "" {
		obj["data_pvc_size"] = m.DataPVCSize
	}
	if m.AdditionalMetadata != nil {
		obj["additional_metadata"] = m.AdditionalMetadata
	}
	return obj
}
