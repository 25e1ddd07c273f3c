// Package pennant decides whether a team in a sports division is
// mathematically eliminated from finishing first, and proves it.
//
// A team x is eliminated when no outcome of the remaining games lets it
// finish with at least as many wins as every other team. Elimination is
// either trivial (some team already has more wins than x can reach) or
// follows from a max-flow computation over the games left among the other
// teams; in both cases a certificate subset R is produced whose combined
// wins, averaged over R, exceed what x can reach.
//
// Layout:
//
//	core/         directed/undirected graph primitives used to describe networks
//	flow/         Ford–Fulkerson, Edmonds–Karp and Dinic max-flow with min-cut access
//	schedule/     immutable division standings and the text loader
//	elimination/  the reduction, the concurrent certificate cache and the Engine
//	cmd/pennant   command-line front end
//
// Quick start:
//
//	repo, _ := schedule.LoadFile("teams4.txt")
//	e := elimination.NewEngine(repo)
//	cert, ok, _ := e.CertificateOfElimination(ctx, "Philadelphia")
//	// ok == true, cert == [Atlanta New_York]
package pennant
