package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseDoc(t *testing.T, data string) *Document {
	t.Helper()
	doc, err := Parse([]byte(data))
	require.NoError(t, err)
	return doc
}

func parseService(t *testing.T, data string) *Service {
	t.Helper()
	doc := parseDoc(t, data)
	svc, ok := doc.Services["app"]
	require.True(t, ok, "document must declare service app")
	require.NotNil(t, svc)
	return svc
}

// TestParseCommandForms tests string and list forms of command/entrypoint
func TestParseCommandForms(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		expected Command
	}{
		{
			name:     "plain string split on spaces",
			yaml:     "services:\n  app:\n    command: nginx -g daemon\n",
			expected: Command{"nginx", "-g", "daemon"},
		},
		{
			name:     "quoted argument kept together",
			yaml:     "services:\n  app:\n    command: echo \"hello world\"\n",
			expected: Command{"echo", "hello world"},
		},
		{
			name:     "single quotes",
			yaml:     "services:\n  app:\n    command: sh -c 'sleep 1; exit'\n",
			expected: Command{"sh", "-c", "sleep 1; exit"},
		},
		{
			name:     "list passes through",
			yaml:     "services:\n  app:\n    command: [\"redis-server\", \"--appendonly yes\"]\n",
			expected: Command{"redis-server", "--appendonly yes"},
		},
		{
			name:     "empty string becomes empty argv",
			yaml:     "services:\n  app:\n    command: \"\"\n",
			expected: Command{},
		},
		{
			name:     "absent stays nil",
			yaml:     "services:\n  app:\n    image: x\n",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := parseService(t, tt.yaml)
			assert.Equal(t, tt.expected, svc.Command)
		})
	}
}

// TestParseEnvironment tests both environment forms and order preservation
func TestParseEnvironment(t *testing.T) {
	t.Run("map form preserves declaration order", func(t *testing.T) {
		svc := parseService(t, `
services:
  app:
    environment:
      ZULU: "1"
      ALPHA: two
      FLAG: true
      NOVALUE:
`)
		require.Len(t, svc.Environment, 4)
		assert.Equal(t, "ZULU", svc.Environment[0].Name)
		assert.Equal(t, "1", *svc.Environment[0].Value)
		assert.Equal(t, "ALPHA", svc.Environment[1].Name)
		assert.Equal(t, "two", *svc.Environment[1].Value)
		assert.Equal(t, "true", *svc.Environment[2].Value)
		assert.Equal(t, "NOVALUE", svc.Environment[3].Name)
		assert.Nil(t, svc.Environment[3].Value)
	})

	t.Run("list form splits on first equals", func(t *testing.T) {
		svc := parseService(t, `
services:
  app:
    environment:
      - DB_URL=postgres://db?sslmode=disable
      - PASSTHROUGH
`)
		require.Len(t, svc.Environment, 2)
		assert.Equal(t, "DB_URL", svc.Environment[0].Name)
		assert.Equal(t, "postgres://db?sslmode=disable", *svc.Environment[0].Value)
		assert.Nil(t, svc.Environment[1].Value)
	})
}

// TestParseLabels tests that valueless label entries are dropped
func TestParseLabels(t *testing.T) {
	svc := parseService(t, `
services:
  app:
    labels:
      - "com.example.a=1"
      - "novalue"
    deploy:
      labels:
        tier: web
`)
	assert.Equal(t, Labels{"com.example.a": "1"}, svc.Labels)
	require.NotNil(t, svc.Deploy)
	assert.Equal(t, Labels{"tier": "web"}, svc.Deploy.Labels)
}

// TestParseShortPorts tests the short port syntax variants
func TestParseShortPorts(t *testing.T) {
	tests := []struct {
		name     string
		entry    string
		expected Port
	}{
		{
			name:     "target only",
			entry:    `"8080"`,
			expected: Port{Target: 8080},
		},
		{
			name:     "published and target",
			entry:    `"22022:22"`,
			expected: Port{Target: 22, Published: &PortRange{Start: 22022, End: 22022}},
		},
		{
			name:     "host ip prefix",
			entry:    `"127.0.0.1:8080:80"`,
			expected: Port{Target: 80, Published: &PortRange{Start: 8080, End: 8080}, HostIP: "127.0.0.1"},
		},
		{
			name:     "protocol suffix",
			entry:    `"53:53/udp"`,
			expected: Port{Target: 53, Published: &PortRange{Start: 53, End: 53}, Protocol: "udp"},
		},
		{
			name:     "published range keeps bounds, target range collapses",
			entry:    `"8000-8005:9000-9005"`,
			expected: Port{Target: 9000, Published: &PortRange{Start: 8000, End: 8005}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := parseService(t, "services:\n  app:\n    ports:\n      - "+tt.entry+"\n")
			require.Len(t, svc.Ports, 1)
			assert.Equal(t, tt.expected, svc.Ports[0])
		})
	}

	t.Run("invalid entry fails the parse", func(t *testing.T) {
		_, err := Parse([]byte("services:\n  app:\n    ports:\n      - \"eighty:80\"\n"))
		assert.Error(t, err)
	})
}

// TestParseLongPort tests the long port form with credential extensions
func TestParseLongPort(t *testing.T) {
	t.Run("string credentials are honored", func(t *testing.T) {
		svc := parseService(t, `
services:
  app:
    ports:
      - target: 22
        published: 22022
        app_protocol: ssh
        x-username: ctf
        x-password: "s3cret"
`)
		require.Len(t, svc.Ports, 1)
		port := svc.Ports[0]
		assert.Equal(t, int32(22), port.Target)
		assert.Equal(t, int32(22022), port.PublishedPort())
		assert.Equal(t, "ssh", port.AppProtocol)
		assert.True(t, port.HasUsername)
		assert.Equal(t, "ctf", port.Username)
		assert.True(t, port.HasPassword)
		assert.Equal(t, "s3cret", port.Password)
	})

	t.Run("non-string credentials are present but empty", func(t *testing.T) {
		svc := parseService(t, `
services:
  app:
    ports:
      - target: 22
        x-username: 1234
        x-password: [not, a, string]
`)
		require.Len(t, svc.Ports, 1)
		port := svc.Ports[0]
		assert.True(t, port.HasUsername)
		assert.Empty(t, port.Username)
		assert.True(t, port.HasPassword)
		assert.Empty(t, port.Password)
	})
}

// TestPortHelpers tests protocol defaults and published fallback
func TestPortHelpers(t *testing.T) {
	assert.True(t, (&Port{}).IsTCP())
	assert.True(t, (&Port{Protocol: "TCP"}).IsTCP())
	assert.False(t, (&Port{Protocol: "udp"}).IsTCP())

	assert.Equal(t, int32(80), (&Port{Target: 80}).PublishedPort())
	assert.Equal(t, int32(8080), (&Port{Target: 80, Published: &PortRange{Start: 8080, End: 8090}}).PublishedPort())
}

// TestParseMounts tests short and long mount syntax
func TestParseMounts(t *testing.T) {
	tests := []struct {
		name     string
		entry    string
		expected Mount
	}{
		{
			name:     "named volume",
			entry:    `"dbdata:/var/lib/mysql"`,
			expected: Mount{Type: MountVolume, Source: "dbdata", Target: "/var/lib/mysql"},
		},
		{
			name:     "relative bind",
			entry:    `"./data/web:/usr/share/nginx"`,
			expected: Mount{Type: MountBind, Source: "./data/web", Target: "/usr/share/nginx"},
		},
		{
			name:     "absolute bind",
			entry:    `"/etc/passwd:/etc/passwd"`,
			expected: Mount{Type: MountBind, Source: "/etc/passwd", Target: "/etc/passwd"},
		},
		{
			name:     "read-only option",
			entry:    `"cache:/cache:ro"`,
			expected: Mount{Type: MountVolume, Source: "cache", Target: "/cache", ReadOnly: true},
		},
		{
			name:     "anonymous volume",
			entry:    `"/scratch"`,
			expected: Mount{Type: MountVolume, Target: "/scratch"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := parseService(t, "services:\n  app:\n    volumes:\n      - "+tt.entry+"\n")
			require.Len(t, svc.Volumes, 1)
			assert.Equal(t, tt.expected, svc.Volumes[0])
		})
	}

	t.Run("long form defaults to volume type", func(t *testing.T) {
		svc := parseService(t, `
services:
  app:
    volumes:
      - source: dbdata
        target: /var/lib/mysql
        read_only: true
`)
		require.Len(t, svc.Volumes, 1)
		assert.Equal(t, Mount{Type: MountVolume, Source: "dbdata", Target: "/var/lib/mysql", ReadOnly: true}, svc.Volumes[0])
	})
}

// TestParseExtraHosts tests list and map forms
func TestParseExtraHosts(t *testing.T) {
	t.Run("list form", func(t *testing.T) {
		svc := parseService(t, `
services:
  app:
    extra_hosts:
      - "db:10.0.0.2"
      - "cache:10.0.0.3"
`)
		assert.Equal(t, ExtraHosts{
			{Host: "db", IP: "10.0.0.2"},
			{Host: "cache", IP: "10.0.0.3"},
		}, svc.ExtraHosts)
	})

	t.Run("map form", func(t *testing.T) {
		svc := parseService(t, `
services:
  app:
    extra_hosts:
      db: 10.0.0.2
`)
		assert.Equal(t, ExtraHosts{{Host: "db", IP: "10.0.0.2"}}, svc.ExtraHosts)
	})

	t.Run("entry without ip fails", func(t *testing.T) {
		_, err := Parse([]byte("services:\n  app:\n    extra_hosts:\n      - nocolon\n"))
		assert.Error(t, err)
	})
}

// TestParseBytes tests docker-style byte quantities with binary multiples
func TestParseBytes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
		wantErr  bool
	}{
		{name: "bare integer", input: "1024", expected: 1024},
		{name: "bytes suffix", input: "600b", expected: 600},
		{name: "kilo", input: "2k", expected: 2 * 1024},
		{name: "kb spelled out", input: "2kb", expected: 2 * 1024},
		{name: "kib spelled out", input: "2kib", expected: 2 * 1024},
		{name: "mega", input: "512m", expected: 512 * 1024 * 1024},
		{name: "giga", input: "1g", expected: 1 << 30},
		{name: "fractional", input: "0.5g", expected: 1 << 29},
		{name: "uppercase", input: "16MB", expected: 16 * 1024 * 1024},
		{name: "garbage", input: "lots", wantErr: true},
		{name: "negative", input: "-1k", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseBytes(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// TestParseExpose tests expose entries including protocol suffixes
func TestParseExpose(t *testing.T) {
	svc := parseService(t, `
services:
  app:
    expose:
      - "8080"
      - 9090
      - 5353/udp
      - 7000-7002
`)
	assert.Equal(t, []Expose{
		{Port: 8080},
		{Port: 9090},
		{Port: 5353, Protocol: "udp"},
		{Port: 7000},
	}, svc.Expose)
}

// TestParseEnvFiles tests the string, list and long forms of env_file
func TestParseEnvFiles(t *testing.T) {
	svc := parseService(t, `
services:
  app:
    env_file:
      - common.env
      - path: optional.env
        required: false
`)
	assert.Equal(t, EnvFiles{
		{Path: "common.env", Required: true},
		{Path: "optional.env", Required: false},
	}, svc.EnvFile)

	single := parseService(t, "services:\n  app:\n    env_file: .env\n")
	assert.Equal(t, EnvFiles{{Path: ".env", Required: true}}, single.EnvFile)
}

// TestVolumeSpecExternal tests external volume detection across forms
func TestVolumeSpecExternal(t *testing.T) {
	doc := parseDoc(t, `
services: {}
volumes:
  plain:
  sized:
    x-size: 5Gi
  ext:
    external: true
  extfalse:
    external: false
  extnamed:
    external:
      name: legacy
`)
	assert.False(t, doc.Volumes["plain"].IsExternal())
	assert.False(t, doc.Volumes["sized"].IsExternal())
	assert.Equal(t, "5Gi", doc.Volumes["sized"].Size)
	assert.True(t, doc.Volumes["ext"].IsExternal())
	assert.False(t, doc.Volumes["extfalse"].IsExternal())
	assert.True(t, doc.Volumes["extnamed"].IsExternal())
}

// TestHasMetadata tests extension presence detection
func TestHasMetadata(t *testing.T) {
	assert.True(t, parseDoc(t, "services: {}\nx-ctf-metadata:\n  name: Test\n").HasMetadata())
	assert.False(t, parseDoc(t, "services: {}\n").HasMetadata())
	assert.False(t, parseDoc(t, "services: {}\nx-ctf-metadata:\n").HasMetadata())
}

// TestParseRejectsGarbage tests that non-YAML input fails with a typed error
func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse([]byte("\tservices: {"))
	require.Error(t, err)
	assert.True(t, IsKind(err, KindOther))
}

// TestSlugify tests mount-path slugs
func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"/var/lib/mysql", "var-lib-mysql"},
		{"./data/Web Stuff/", "data-web-stuff"},
		{"UPPER_case", "upper-case"},
		{"already-fine", "already-fine"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, slugify(tt.input), "slugify(%q)", tt.input)
	}
}
