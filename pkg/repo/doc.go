/*
Package repo keeps the local challenge repository clone in sync.

Challenges live in a git repository owned by the event organizers. The
manager never pulls or merges: every sync is a fresh shallow clone of one
branch (depth 1, no tags), swapped into place only after it fully
succeeded. That makes syncs idempotent, immune to force pushes, and unable
to corrupt the working tree on network failure.

Failure kinds (network, auth, dir_exists, io, other) are attached to every
error so the sync status surface and the logs can tell misconfiguration
apart from transient trouble.
*/
package repo
