/*
Package report provides the output sinks for filegrep.

	+-------------+
	|    Sink     |
	| (Interface) |
	+------+------+
	       |
	  +----+----+
	  |         |
	+-+---+  +--+---+
	|Conso|  | File |
	| le  |  |Append|
	+-----+  +------+

🎯 Purpose:
- Matched paths and user-facing diagnostics flow through one Sink
- Console sink prints verbatim, file sink appends one line per call
- The verbose scan summary is terminal UX and bypasses the sinks

📝 Design Philosophy:
The sink is selected once at startup and passed by reference to everything
that reports, so there is no global mutable logging destination. A sink
failure has no fallback and is fatal for the run.
*/
package report
