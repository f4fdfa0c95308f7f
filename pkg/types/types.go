package types

import (
	"fmt"
	"strings"
	"unicode"
)

// ActorKind distinguishes the two principal kinds an event can run with
type ActorKind string

const (
	ActorKindUser ActorKind = "user"
	ActorKindTeam ActorKind = "team"
)

// Actor is the owning principal of challenge instances. Solo events use
// users, team events use teams. Everything downstream (namespace labels,
// template context, password derivation) only ever sees the stringified
// form, so switching event modes does not touch call sites.
type Actor struct {
	Kind ActorKind
	ID   string // platform-side UUID
	Name string // username or team slug
}

// String returns the stable principal key, e.g. "user-alice" or "team-red".
func (a Actor) String() string {
	return fmt.Sprintf("%s-%s", a.Kind, a.Name)
}

// NewUserActor builds a user principal.
func NewUserActor(id, username string) Actor {
	return Actor{Kind: ActorKindUser, ID: id, Name: username}
}

// NewTeamActor builds a team principal.
func NewTeamActor(id, slug string) Actor {
	return Actor{Kind: ActorKindTeam, ID: id, Name: slug}
}

// InstanceState represents the lifecycle state of a challenge instance
type InstanceState string

const (
	InstanceStateCreating    InstanceState = "creating"
	InstanceStateRunning     InstanceState = "running"
	InstanceStateTerminating InstanceState = "terminating"
)

// Instance represents a live deployment of a challenge for one actor,
// realized as a cluster namespace.
type Instance struct {
	ChallengeID string
	InstanceID  string // 12-hex suffix of the namespace name
	State       InstanceState
}

// Protocol identifies how a competitor reaches an exposed port
type Protocol string

const (
	ProtocolHTTPS  Protocol = "https"
	ProtocolTCPTLS Protocol = "tcp_tls"
	ProtocolSSH    Protocol = "ssh"
	ProtocolUDP    Protocol = "udp"
	ProtocolTCP    Protocol = "tcp"
)

// ConnectionInfo describes one reachable endpoint of a running instance.
// Port is 0 when the protocol leaves it unspecified (UDP).
type ConnectionInfo struct {
	Protocol Protocol
	Host     string
	Port     int32
}

// CommitInfo describes the HEAD commit of the synced challenge repository
type CommitInfo struct {
	Hash      string
	Timestamp int64 // unix seconds
	Author    string
	Title     string
}

// ValidateChallengeID checks that an untrusted challenge id only contains
// characters safe for directory lookups and cluster object names.
func ValidateChallengeID(id string) error {
	if id == "" {
		return NewBadArgument("challenge id is empty")
	}
	for _, r := range id {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-' || r == '_' {
			continue
		}
		return NewBadArgument("challenge id contains invalid character %q", r)
	}
	return nil
}

// SplitWithQuotes splits a string into fields, honoring single and double
// quotes and backslash escapes the way a shell word-splitter would. Quotes
// are removed from the output unless escaped; the escape character itself
// is removed. Used for string-form compose command and entrypoint values.
func SplitWithQuotes(input string) []string {
	output := []string{}
	var current strings.Builder
	inQuotes := false
	var quoteChar rune
	escaped := false

	for _, c := range input {
		if escaped {
			current.WriteRune(c)
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}
		if c == '"' || c == '\'' {
			switch {
			case inQuotes && c == quoteChar:
				inQuotes = false
				quoteChar = 0
			case !inQuotes:
				inQuotes = true
				quoteChar = c
			default:
				current.WriteRune(c)
			}
			continue
		}
		if unicode.IsSpace(c) && !inQuotes {
			if current.Len() > 0 {
				output = append(output, current.String())
				current.Reset()
			}
			continue
		}
		current.WriteRune(c)
	}
	if current.Len() > 0 {
		output = append(output, current.String())
	}
	return output
}
