package compose

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/plfanzen/plfanzen/pkg/types"
)

// Document is a parsed compose file. Only the subset of the format the
// translator understands is modelled; challenge extensions live under
// x-ctf-* keys and unknown extensions are ignored.
type Document struct {
	Services map[string]*Service    `yaml:"services"`
	Volumes  map[string]*VolumeSpec `yaml:"volumes"`
	VMs      map[string]*VM         `yaml:"x-ctf-vms"`

	// Metadata is the raw x-ctf-metadata extension. The challenge loader
	// decodes it; keeping the node here avoids parsing the file twice.
	Metadata yaml.Node `yaml:"x-ctf-metadata"`

	// NetworkPolicy is the raw top-level x-ctf-network-policy extension.
	// It is decoded lazily because a malformed policy falls back to the
	// defaults instead of failing the whole document.
	NetworkPolicy yaml.Node `yaml:"x-ctf-network-policy"`
}

// Parse decodes a compose document. Properties that parse but cannot be
// translated are rejected later, by Translate, so that challenge metadata
// can still be read from files the translator would refuse.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errOther("Failed to parse compose file: %v", err)
	}
	return &doc, nil
}

// HasMetadata reports whether the document carries an x-ctf-metadata
// extension at all.
func (d *Document) HasMetadata() bool {
	return !d.Metadata.IsZero() && d.Metadata.Tag != "!!null"
}

// Service is a single compose service. Unsupported properties are kept as
// raw nodes so translation can reject them by name.
type Service struct {
	Image       string       `yaml:"image"`
	Entrypoint  Command      `yaml:"entrypoint"`
	Command     Command      `yaml:"command"`
	Environment Environment  `yaml:"environment"`
	EnvFile     EnvFiles     `yaml:"env_file"`
	Expose      []Expose     `yaml:"expose"`
	Ports       []Port       `yaml:"ports"`
	Volumes     []Mount      `yaml:"volumes"`
	Tmpfs       StringOrList `yaml:"tmpfs"`
	ShmSize     ByteSize     `yaml:"shm_size"`
	Init        bool         `yaml:"init"`
	Labels      Labels       `yaml:"labels"`
	Annotations Labels       `yaml:"annotations"`
	Deploy      *Deploy      `yaml:"deploy"`
	Scale       *int32       `yaml:"scale"`

	Privileged bool     `yaml:"privileged"`
	CapAdd     []string `yaml:"cap_add"`
	CapDrop    []string `yaml:"cap_drop"`
	User       string   `yaml:"user"`
	GroupAdd   []string `yaml:"group_add"`
	ReadOnly   bool     `yaml:"read_only"`
	Runtime    string   `yaml:"runtime"`

	Hostname   string       `yaml:"hostname"`
	Domainname string       `yaml:"domainname"`
	ExtraHosts ExtraHosts   `yaml:"extra_hosts"`
	DNS        StringOrList `yaml:"dns"`
	DNSOpt     []string     `yaml:"dns_opt"`
	DNSSearch  StringOrList `yaml:"dns_search"`

	StopGracePeriod string `yaml:"stop_grace_period"`
	StopSignal      string `yaml:"stop_signal"`

	MemReservation ByteSize `yaml:"mem_reservation"`
	MemLimit       ByteSize `yaml:"mem_limit"`
	CPUs           *CPUs    `yaml:"cpus"`
	CPUCount       *int64   `yaml:"cpu_count"`

	PullPolicy string `yaml:"pull_policy"`
	StdinOpen  bool   `yaml:"stdin_open"`
	TTY        bool   `yaml:"tty"`
	WorkingDir string `yaml:"working_dir"`

	// NetworkPolicy is the raw per-service x-ctf-network-policy extension.
	NetworkPolicy yaml.Node `yaml:"x-ctf-network-policy"`

	// Properties we refuse to translate. Captured so rejection can name
	// them; network_mode and networks both map onto network_config.
	Build          yaml.Node `yaml:"build"`
	StorageOpt     yaml.Node `yaml:"storage_opt"`
	Sysctls        yaml.Node `yaml:"sysctls"`
	Ulimits        yaml.Node `yaml:"ulimits"`
	MemSwappiness  yaml.Node `yaml:"mem_swappiness"`
	MemswapLimit   yaml.Node `yaml:"memswap_limit"`
	Pid            yaml.Node `yaml:"pid"`
	PidsLimit      yaml.Node `yaml:"pids_limit"`
	NetworkMode    yaml.Node `yaml:"network_mode"`
	Networks       yaml.Node `yaml:"networks"`
	MacAddress     yaml.Node `yaml:"mac_address"`
	OomKillDisable bool      `yaml:"oom_kill_disable"`
	OomScoreAdj    yaml.Node `yaml:"oom_score_adj"`
	Platform       yaml.Node `yaml:"platform"`
	SecurityOpt    yaml.Node `yaml:"security_opt"`
	Profiles       yaml.Node `yaml:"profiles"`
}

// rejectUnsupported fails with a PropertyNotSupported error for the first
// property present that the translator refuses to handle.
func rejectUnsupported(svc *Service) error {
	checks := []struct {
		name string
		node yaml.Node
	}{
		{"build", svc.Build},
		{"storage_opt", svc.StorageOpt},
		{"sysctls", svc.Sysctls},
		{"ulimits", svc.Ulimits},
		{"mem_swappiness", svc.MemSwappiness},
		{"memswap_limit", svc.MemswapLimit},
		{"pid", svc.Pid},
		{"pids_limit", svc.PidsLimit},
		{"network_config", svc.NetworkMode},
		{"network_config", svc.Networks},
		{"mac_address", svc.MacAddress},
		{"oom_score_adj", svc.OomScoreAdj},
		{"platform", svc.Platform},
		{"security_opt", svc.SecurityOpt},
		{"profiles", svc.Profiles},
	}
	for _, c := range checks {
		if !c.node.IsZero() && c.node.Tag != "!!null" {
			return errProperty(c.name)
		}
	}
	if svc.OomKillDisable {
		return errProperty("oom_kill_disable")
	}
	return nil
}

// VolumeSpec is a top-level volume declaration. A bare `volname:` entry
// decodes as nil and gets the default size.
type VolumeSpec struct {
	External yaml.Node `yaml:"external"`
	Size     string    `yaml:"x-size"`
}

// IsExternal reports whether the volume references a pre-existing external
// volume, which we cannot provision.
func (v *VolumeSpec) IsExternal() bool {
	if v == nil || v.External.IsZero() || v.External.Tag == "!!null" {
		return false
	}
	var b bool
	if err := v.External.Decode(&b); err == nil && !b {
		return false
	}
	return true
}

// VM is an x-ctf-vms entry: a KubeVirt-backed machine that takes part in
// the instance alongside (or instead of) container services.
type VM struct {
	Memory        string    `yaml:"memory"`
	CPUCores      int32     `yaml:"cpu_cores"`
	Disks         []VMDisk  `yaml:"disks"`
	Ports         []Port    `yaml:"ports"`
	NetworkPolicy yaml.Node `yaml:"network_policy"`
}

// VMDisk declares one disk source. Exactly one of the fields must be set.
type VMDisk struct {
	Image        string `yaml:"image"`
	CloudInitB64 string `yaml:"cloud_init_user_data_base64"`
	VolumeName   string `yaml:"volume_name"`
}

// Command is a compose command or entrypoint. The shell-like string form
// is split into an argv at parse time with quote handling; the list form
// passes through untouched. A nil Command means the property was absent.
type Command []string

func (c *Command) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil
		}
		*c = types.SplitWithQuotes(node.Value)
		if *c == nil {
			*c = Command{}
		}
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return err
		}
		*c = items
		return nil
	}
	return fmt.Errorf("line %d: command must be a string or a list", node.Line)
}

// StringOrList accepts either a single string or a list of strings.
type StringOrList []string

func (s *StringOrList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil
		}
		*s = []string{node.Value}
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return err
		}
		*s = items
		return nil
	}
	return fmt.Errorf("line %d: expected a string or a list of strings", node.Line)
}

// EnvEntry is one environment variable. A nil Value means the variable was
// declared without a value ("KEY" in list form, `KEY:` in map form).
type EnvEntry struct {
	Name  string
	Value *string
}

// Environment preserves declaration order across both the map and the
// list form so the resulting container env is deterministic.
type Environment []EnvEntry

func (e *Environment) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		out := make(Environment, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, val := node.Content[i], node.Content[i+1]
			entry := EnvEntry{Name: key.Value}
			if val.Kind == yaml.ScalarNode && val.Tag != "!!null" {
				v := val.Value
				entry.Value = &v
			} else if val.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: environment value for %s must be a scalar", val.Line, key.Value)
			}
			out = append(out, entry)
		}
		*e = out
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return err
		}
		out := make(Environment, 0, len(items))
		for _, item := range items {
			name, value, found := strings.Cut(item, "=")
			entry := EnvEntry{Name: name}
			if found {
				v := value
				entry.Value = &v
			}
			out = append(out, entry)
		}
		*e = out
		return nil
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil
		}
	}
	return fmt.Errorf("line %d: environment must be a map or a list", node.Line)
}

// Labels accepts the map form or the "key=value" list form. Entries
// without a value are dropped, like the original translator did.
type Labels map[string]string

func (l *Labels) UnmarshalYAML(node *yaml.Node) error {
	out := make(map[string]string)
	switch node.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, val := node.Content[i], node.Content[i+1]
			if val.Kind != yaml.ScalarNode || val.Tag == "!!null" {
				continue
			}
			out[key.Value] = val.Value
		}
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return err
		}
		for _, item := range items {
			name, value, found := strings.Cut(item, "=")
			if !found {
				continue
			}
			out[name] = value
		}
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil
		}
		return fmt.Errorf("line %d: labels must be a map or a list", node.Line)
	}
	*l = out
	return nil
}

// EnvFileRef is a single env_file entry in long form.
type EnvFileRef struct {
	Path     string
	Required bool
}

// EnvFiles accepts a single path, a list of paths, or the long form with
// an explicit required flag (which defaults to true).
type EnvFiles []EnvFileRef

func (e *EnvFiles) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil
		}
		*e = []EnvFileRef{{Path: node.Value, Required: true}}
		return nil
	case yaml.SequenceNode:
		out := make(EnvFiles, 0, len(node.Content))
		for _, item := range node.Content {
			switch item.Kind {
			case yaml.ScalarNode:
				out = append(out, EnvFileRef{Path: item.Value, Required: true})
			case yaml.MappingNode:
				var long struct {
					Path     string `yaml:"path"`
					Required *bool  `yaml:"required"`
				}
				if err := item.Decode(&long); err != nil {
					return err
				}
				ref := EnvFileRef{Path: long.Path, Required: true}
				if long.Required != nil {
					ref.Required = *long.Required
				}
				out = append(out, ref)
			default:
				return fmt.Errorf("line %d: invalid env_file entry", item.Line)
			}
		}
		*e = out
		return nil
	}
	return fmt.Errorf("line %d: env_file must be a string or a list", node.Line)
}

// Expose is a DNS-only container port from the expose list.
type Expose struct {
	Port     int32
	Protocol string
}

func (x *Expose) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expose entries must be scalars", node.Line)
	}
	spec, proto, _ := strings.Cut(node.Value, "/")
	port, err := parsePortNumber(rangeStart(spec))
	if err != nil {
		return fmt.Errorf("line %d: invalid expose entry %q", node.Line, node.Value)
	}
	x.Port = port
	x.Protocol = strings.ToLower(proto)
	return nil
}

// PortRange is a published port range; single ports have Start == End.
type PortRange struct {
	Start int32
	End   int32
}

func (r *PortRange) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: published port must be a scalar", node.Line)
	}
	parsed, err := parsePortRange(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %v", node.Line, err)
	}
	*r = *parsed
	return nil
}

// Port is one ports entry, normalized to the long form. The x-username
// and x-password extensions are only honored when they are strings, so
// their presence is tracked separately from their value.
type Port struct {
	Name        string
	Target      int32
	Published   *PortRange
	HostIP      string
	Protocol    string
	AppProtocol string

	Username    string
	Password    string
	HasUsername bool
	HasPassword bool
}

// IsTCP reports whether the port speaks TCP (the default when no protocol
// is given).
func (p *Port) IsTCP() bool {
	return p.Protocol == "" || strings.EqualFold(p.Protocol, "tcp")
}

// IsUDP reports whether the port declares the UDP protocol.
func (p *Port) IsUDP() bool {
	return strings.EqualFold(p.Protocol, "udp")
}

// IsHTTP reports whether the port is a TCP port carrying HTTP, which routes
// through the TLS-terminating ingress.
func (p *Port) IsHTTP() bool {
	return p.IsTCP() && strings.EqualFold(p.AppProtocol, "http")
}

// IsSSH reports whether the port is a TCP port gated by the SSH gateway.
func (p *Port) IsSSH() bool {
	return p.IsTCP() && strings.EqualFold(p.AppProtocol, "ssh")
}

// PublishedPort is the externally visible port: the start of the published
// range when declared, the target port otherwise.
func (p *Port) PublishedPort() int32 {
	if p.Published != nil {
		return p.Published.Start
	}
	return p.Target
}

func (p *Port) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		parsed, err := parseShortPort(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %v", node.Line, err)
		}
		*p = *parsed
		return nil
	case yaml.MappingNode:
		var long struct {
			Name        string     `yaml:"name"`
			Target      int32      `yaml:"target"`
			Published   *PortRange `yaml:"published"`
			HostIP      string     `yaml:"host_ip"`
			Protocol    string     `yaml:"protocol"`
			AppProtocol string     `yaml:"app_protocol"`
			Username    yaml.Node  `yaml:"x-username"`
			Password    yaml.Node  `yaml:"x-password"`
		}
		if err := node.Decode(&long); err != nil {
			return err
		}
		*p = Port{
			Name:        long.Name,
			Target:      long.Target,
			Published:   long.Published,
			HostIP:      long.HostIP,
			Protocol:    strings.ToLower(long.Protocol),
			AppProtocol: long.AppProtocol,
		}
		if !long.Username.IsZero() && long.Username.Tag != "!!null" {
			p.HasUsername = true
			if long.Username.Tag == "!!str" {
				p.Username = long.Username.Value
			}
		}
		if !long.Password.IsZero() && long.Password.Tag != "!!null" {
			p.HasPassword = true
			if long.Password.Tag == "!!str" {
				p.Password = long.Password.Value
			}
		}
		return nil
	}
	return fmt.Errorf("line %d: port entries must be scalars or maps", node.Line)
}

// parseShortPort handles "TARGET", "PUBLISHED:TARGET" and
// "HOSTIP:PUBLISHED:TARGET", each with an optional "/protocol" suffix.
// Ranges collapse to their first port, matching how published ranges are
// consumed downstream.
func parseShortPort(value string) (*Port, error) {
	spec, proto, _ := strings.Cut(value, "/")
	parts := strings.Split(spec, ":")

	port := &Port{Protocol: strings.ToLower(proto)}
	switch len(parts) {
	case 1:
		target, err := parsePortNumber(rangeStart(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid port definition %q", value)
		}
		port.Target = target
	case 2:
		published, err := parsePortRange(parts[0])
		if err != nil {
			return nil, fmt.Errorf("invalid port definition %q", value)
		}
		target, err := parsePortNumber(rangeStart(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid port definition %q", value)
		}
		port.Published = published
		port.Target = target
	case 3:
		port.HostIP = parts[0]
		published, err := parsePortRange(parts[1])
		if err != nil {
			return nil, fmt.Errorf("invalid port definition %q", value)
		}
		target, err := parsePortNumber(rangeStart(parts[2]))
		if err != nil {
			return nil, fmt.Errorf("invalid port definition %q", value)
		}
		port.Published = published
		port.Target = target
	default:
		return nil, fmt.Errorf("invalid port definition %q", value)
	}
	return port, nil
}

func parsePortRange(value string) (*PortRange, error) {
	start, end, found := strings.Cut(value, "-")
	s, err := parsePortNumber(start)
	if err != nil {
		return nil, fmt.Errorf("invalid port range %q", value)
	}
	if !found {
		return &PortRange{Start: s, End: s}, nil
	}
	e, err := parsePortNumber(end)
	if err != nil || e < s {
		return nil, fmt.Errorf("invalid port range %q", value)
	}
	return &PortRange{Start: s, End: e}, nil
}

func parsePortNumber(value string) (int32, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(value), 10, 16)
	if err != nil {
		return 0, err
	}
	return int32(n), nil
}

func rangeStart(value string) string {
	start, _, _ := strings.Cut(value, "-")
	return start
}

// Mount types, matching the compose long-form type names.
const (
	MountVolume    = "volume"
	MountBind      = "bind"
	MountTmpfs     = "tmpfs"
	MountNamedPipe = "npipe"
	MountCluster   = "cluster"
)

// Mount is one volumes entry, normalized to the long form.
type Mount struct {
	Type     string
	Source   string
	Target   string
	ReadOnly bool
}

func (m *Mount) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		parsed, err := parseShortMount(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %v", node.Line, err)
		}
		*m = *parsed
		return nil
	case yaml.MappingNode:
		var long struct {
			Type     string `yaml:"type"`
			Source   string `yaml:"source"`
			Target   string `yaml:"target"`
			ReadOnly bool   `yaml:"read_only"`
		}
		if err := node.Decode(&long); err != nil {
			return err
		}
		if long.Type == "" {
			long.Type = MountVolume
		}
		*m = Mount{Type: long.Type, Source: long.Source, Target: long.Target, ReadOnly: long.ReadOnly}
		return nil
	}
	return fmt.Errorf("line %d: volume entries must be strings or maps", node.Line)
}

// parseShortMount handles "TARGET" (anonymous), "SOURCE:TARGET" and
// "SOURCE:TARGET:OPTS". Sources that look like paths become binds,
// everything else references a named volume.
func parseShortMount(value string) (*Mount, error) {
	parts := strings.Split(value, ":")
	switch len(parts) {
	case 1:
		return &Mount{Type: MountVolume, Target: parts[0]}, nil
	case 2, 3:
		m := &Mount{Type: MountVolume, Source: parts[0], Target: parts[1]}
		if isPathSource(parts[0]) {
			m.Type = MountBind
		}
		if len(parts) == 3 {
			for _, opt := range strings.Split(parts[2], ",") {
				if opt == "ro" {
					m.ReadOnly = true
				}
			}
		}
		return m, nil
	}
	return nil, fmt.Errorf("invalid volume definition %q", value)
}

func isPathSource(source string) bool {
	return strings.HasPrefix(source, "/") ||
		strings.HasPrefix(source, "./") ||
		strings.HasPrefix(source, "../") ||
		strings.HasPrefix(source, "~")
}

// ExtraHosts accepts the "host:ip" list form or the map form, preserving
// declaration order.
type ExtraHosts []HostMapping

// HostMapping is one extra_hosts entry.
type HostMapping struct {
	Host string
	IP   string
}

func (e *ExtraHosts) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		out := make(ExtraHosts, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			out = append(out, HostMapping{Host: node.Content[i].Value, IP: node.Content[i+1].Value})
		}
		*e = out
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return err
		}
		out := make(ExtraHosts, 0, len(items))
		for _, item := range items {
			host, ip, found := strings.Cut(item, ":")
			if !found {
				return fmt.Errorf("line %d: invalid extra_hosts entry %q", node.Line, item)
			}
			out = append(out, HostMapping{Host: host, IP: ip})
		}
		*e = out
		return nil
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil
		}
	}
	return fmt.Errorf("line %d: extra_hosts must be a map or a list", node.Line)
}

// Deploy carries the subset of the deploy section we honor.
type Deploy struct {
	Replicas *int32 `yaml:"replicas"`
	Labels   Labels `yaml:"labels"`
}

// ByteSize is a byte quantity in compose notation: a bare integer or a
// number with a b/k/m/g suffix using binary multiples, optionally spelled
// kb/mb/gb. Zero means unset.
type ByteSize int64

func (b *ByteSize) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: byte quantity must be a scalar", node.Line)
	}
	if node.Tag == "!!null" {
		return nil
	}
	parsed, err := parseBytes(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %v", node.Line, err)
	}
	*b = ByteSize(parsed)
	return nil
}

var byteSuffixes = []struct {
	suffix     string
	multiplier int64
}{
	{"kib", 1 << 10}, {"mib", 1 << 20}, {"gib", 1 << 30},
	{"kb", 1 << 10}, {"mb", 1 << 20}, {"gb", 1 << 30},
	{"k", 1 << 10}, {"m", 1 << 20}, {"g", 1 << 30},
	{"b", 1},
}

func parseBytes(value string) (int64, error) {
	s := strings.ToLower(strings.TrimSpace(value))
	multiplier := int64(1)
	for _, c := range byteSuffixes {
		if strings.HasSuffix(s, c.suffix) && len(s) > len(c.suffix) {
			multiplier = c.multiplier
			s = strings.TrimSpace(strings.TrimSuffix(s, c.suffix))
			break
		}
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid byte quantity %q", value)
	}
	return int64(n * float64(multiplier)), nil
}

// CPUs is a fractional CPU count, accepted as a number or a string.
type CPUs float64

func (c *CPUs) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: cpus must be a scalar", node.Line)
	}
	f, err := strconv.ParseFloat(node.Value, 64)
	if err != nil || f < 0 {
		return fmt.Errorf("line %d: invalid cpus value %q", node.Line, node.Value)
	}
	*c = CPUs(f)
	return nil
}
