/*
Package template renders challenge source trees for a specific actor.

Challenges are stored as plain directories. Before anything is parsed,
deployed, or exported, the whole directory is rendered into a scratch
location: files ending in .tpl run through Go templates with the sprig
function set plus a js function that evaluates expressions in the render
sandbox; every other file is copied byte for byte. JavaScript helpers under
_helpers/ at the challenge root are loaded into the sandbox once, in name
order, and are available to every template of that render.

The template context carries two values:

	{{ .actor }}      the owning principal, e.g. "user-alice" or "team-red"
	{{ .is_export }}  true when rendering for a source export

This makes per-actor secrets possible, e.g. deriving an admin password with
{{ js "crypto.hmacSha256Hex(secret, actor)" }} inside a config template.

Rendering refuses to follow anything outside the challenge directory: every
entry is resolved through symlinks and must stay under the source root,
otherwise the render fails with ErrPathEscape. Challenge authors are
semi-trusted; repository content is not allowed to read other challenges'
flags via a planted symlink.
*/
package template
