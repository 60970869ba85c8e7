package parser

import "git.lost.host/meutraa/whipbeat/internal/game"

type Parser interface {
	Parse(file string) ([]*game.Chart, error)
}
