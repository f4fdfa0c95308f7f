// Package challenge loads CTF challenges from the repository working
// tree. Loading renders the challenge directory for a specific actor,
// parses the compose manifest and its x-ctf-metadata extension, and can
// produce a sanitized source archive for publication.
//
// Flag validation and per-instance password derivation live here because
// both are functions of the metadata alone.
package challenge
