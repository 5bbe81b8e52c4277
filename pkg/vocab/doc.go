// Package vocab declares the closed semantic-token vocabulary of the design
// system: the sizing and spacing step tables, the color intent map, and the
// hand-curated shadow and border-radius lookup tables.
//
// All tables are read-only after package initialisation and are safe to share
// between goroutines. Entry order is significant: it is the order in which
// suggestions are offered.
package vocab
