package compose

import (
	"errors"
	"fmt"
)

// Kind classifies translation failures so callers can map them onto their
// own error taxonomy without string matching.
type Kind string

const (
	KindAnonymousVolume    Kind = "anonymous_volume"
	KindHostPathVolume     Kind = "host_path_volume"
	KindNamedPipeVolume    Kind = "named_pipe_volume"
	KindClusterVolume      Kind = "cluster_volume"
	KindPortWithHostIP     Kind = "port_with_host_ip"
	KindUserName           Kind = "user_name_not_supported"
	KindEnvFileOutOfBounds Kind = "env_file_out_of_bounds"
	KindEnvFileRead        Kind = "env_file_read"
	KindEnvFileParse       Kind = "env_file_parse"
	KindProperty           Kind = "property_not_supported"
	KindExternalVolume     Kind = "external_volume"
	KindOther              Kind = "other"
)

// Error is a translation failure with a machine-readable kind.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the kind of err if it is (or wraps) an *Error, and
// KindOther otherwise.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindOther
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

func errAnonymousVolume() *Error {
	return &Error{Kind: KindAnonymousVolume, Msg: "Anonymous volumes are not supported"}
}

func errHostPathVolume(path string) *Error {
	return &Error{Kind: KindHostPathVolume, Msg: fmt.Sprintf("Host paths outside of ./data/ are not supported: %s", path)}
}

func errNamedPipeVolume() *Error {
	return &Error{Kind: KindNamedPipeVolume, Msg: "Named pipe volumes are not supported"}
}

func errClusterVolume() *Error {
	return &Error{Kind: KindClusterVolume, Msg: "Cluster volumes are not supported"}
}

func errPortWithHostIP() *Error {
	return &Error{Kind: KindPortWithHostIP, Msg: "Ports with HostIP are not supported"}
}

func errUserName() *Error {
	return &Error{Kind: KindUserName, Msg: "User and group names are not supported"}
}

func errGroupName() *Error {
	return &Error{Kind: KindUserName, Msg: "Group names are not supported in 'group_add' field"}
}

func errEnvFileOutOfBounds(path string) *Error {
	return &Error{Kind: KindEnvFileOutOfBounds, Msg: fmt.Sprintf("References to env files outside of the working directory are not supported: %s", path)}
}

func errEnvFileRead(path string, err error) *Error {
	return &Error{Kind: KindEnvFileRead, Msg: fmt.Sprintf("Failed to read environment file %s", path), Err: err}
}

func errEnvFileParse(path string, err error) *Error {
	return &Error{Kind: KindEnvFileParse, Msg: fmt.Sprintf("Failed to parse environment file %s", path), Err: err}
}

func errProperty(name string) *Error {
	return &Error{Kind: KindProperty, Msg: fmt.Sprintf("Property not supported: %s", name)}
}

func errExternalVolume() *Error {
	return &Error{Kind: KindExternalVolume, Msg: "External volume not supported"}
}

func errOther(format string, args ...interface{}) *Error {
	return &Error{Kind: KindOther, Msg: fmt.Sprintf(format, args...)}
}
