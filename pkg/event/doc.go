/*
Package event loads the event-wide configuration from event.yml.

One file at the repository root describes everything that is not a
challenge: event name, schedule, registration window, team mode, categories
and difficulty tiers, and optionally a JavaScript scoring function. The
scoring function receives challenge metadata and solve statistics and
returns the point value of a solve, so organizers can implement decaying
or first-blood scoring without touching the platform. Events without a
points_fn award a flat 100 points per solve.
*/
package event
