// meta/meta.go
package meta

// DefaultPort is the advice server's listen port.
const DefaultPort = 8080

// DefaultGames is the number of games per advisor in an experiment.
const DefaultGames = 100

// DefaultTurns is the number of turns per experiment game.
const DefaultTurns = 8

// DefaultSeed seeds the experiment dice for reproducible runs.
const DefaultSeed = 1
