/*
Package config reads process configuration from the environment.

Both Plfanzen binaries are configured exclusively through environment
variables so that container deployments need no config files or flags.

# Manager

	REPO_DIR                           working tree location (default /data/repo)
	GIT_URL                            challenge repository URL (required)
	GIT_BRANCH                         branch to sync (required)
	EXPOSED_DOMAIN                     public wildcard domain (default localhost)
	LISTEN_ADDR                        gRPC listen address (default [::]:50051)
	HMAC_SECRET_KEY                    password-derivation key (recommended)
	INSECURE_FORCE_DISABLE_DNS_CHECKS  drop DNS inspection from egress policies

# SSH Gateway

	PRIVATE_KEY_FILE  host key location (default /data/ssh_host_key)
	LISTEN_ADDR       SSH listen address (default [::]:2222)

Missing required variables fail startup with a non-zero exit code.
*/
package config
