/*
Package types defines the shared data model for Plfanzen.

These types cross package boundaries: the gRPC facade, the challenge loader,
the compose translator, the instance manager, and the SSH gateway all speak
in terms of them. Keeping them in one dependency-free package avoids import
cycles between the domain packages.

# Core Types

Actor:
  - The owning principal of challenge instances
  - Either a user ("user-<username>") or a team ("team-<slug>")
  - The stringified form is the single isolation key used for namespace
    labels, template context, quota lookups, and password derivation

Instance:
  - A live deployment of a challenge for one actor
  - InstanceID is the 12-hex suffix of the backing namespace name
  - State is creating, running, or terminating

ConnectionInfo:
  - One reachable endpoint of a running instance
  - Protocol is https, tcp_tls, ssh, udp, or tcp
  - SSH-gated endpoints point at the gateway's public host on port 2222

CommitInfo:
  - HEAD commit of the synced challenge repository
  - Returned through the repository sync status RPC

# Helpers

ValidateChallengeID rejects ids containing anything but lowercase
alphanumerics, dashes, and underscores before they reach directory lookups
or cluster object names.

SplitWithQuotes performs shell-like word splitting with single quotes,
double quotes, and backslash escapes. The compose translator uses it for
string-form command and entrypoint values.
*/
package types
