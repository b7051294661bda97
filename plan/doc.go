// Package plan sequences decompose -> assign -> route -> audit for every
// agent and returns the per-agent results the mission emitter turns into
// files. It logs one structured line per stage (and per agent within
// routing), wraps any stage's sentinel error with the stage name (and
// agent index where applicable) before returning, and optionally fans
// per-agent routing out over a bounded worker pool via
// golang.org/x/sync/errgroup.
package plan
