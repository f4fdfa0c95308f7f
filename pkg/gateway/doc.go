// Package gateway implements the in-cluster SSH reverse proxy. Players
// connect to one public endpoint with a per-instance login name; the
// gateway resolves the login against a registry fed by a controller
// watching SSHGateway objects and proxies the session onto the backend
// server inside the instance namespace.
package gateway
