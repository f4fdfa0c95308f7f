/*
Package script runs author-provided JavaScript in a hardened sandbox.

Challenge authors can attach three kinds of scripts to an event: flag
validation functions (x-ctf-metadata flag_validation_fn), scoring functions
(event.yml points_fn), and template helpers (_helpers/*.js evaluated through
the js template function). All three run through this package.

# Sandbox Guarantees

  - No module system: require and import fail with a script error
  - No filesystem, network, or process access
  - No real timers: setTimeout queues callbacks that are flushed
    cooperatively after the main evaluation, in delay order
  - Every entry into the interpreter is bounded by a one second budget,
    enforced with an interpreter interrupt
  - Flag validation and scoring use a fresh interpreter per evaluation so
    no state leaks between submissions

# Host API

Scripts see a small, stable surface:

	setFlagValidationFunction(fn)  // flag validators register here
	setPointsFn(fn)                // scoring scripts register here
	crypto.hmacSha256Hex(key, msg)
	crypto.sha256Hex(msg)
	crypto.md5Hex(msg)
	console.log / console.warn / console.error
	setTimeout(fn, delayMs) / clearTimeout(id)

console output is forwarded to the structured log at the matching level
under the script component.

# Error Reporting

All failures come back as script-kinded errors: parse errors, uncaught
exceptions, exceeded budgets, and contract violations (validator never
registered, non-boolean result, non-integer points). The gRPC layer maps
these to Internal without leaking interpreter stack traces to competitors.
*/
package script
