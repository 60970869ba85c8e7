package score

import (
	"database/sql"
	"fmt"
	"math"
	"time"

	"git.lost.host/meutraa/whipbeat/internal/game"
	"git.lost.host/meutraa/whipbeat/internal/log"
	_ "github.com/mattn/go-sqlite3"
)

// Journal keeps every judgement of the running session in an in-memory
// sqlite database. Nothing outlives the process.
type Journal struct {
	db  *sql.DB
	log *log.Logger
}

type Summary struct {
	Total   int
	Counts  map[game.Quality]int
	ByClass map[game.FrequencyClass]int // non-miss hits
	Score   int
	Mean    time.Duration // signed offset of non-miss hits
	Stdev   time.Duration
}

func OpenJournal(l *log.Logger) (*Journal, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if nil != err {
		return nil, fmt.Errorf("unable to open journal: %w", err)
	}
	// every connection to :memory: is its own database
	db.SetMaxOpenConns(1)

	initStatement := `
	create table if not exists judgements
	  (
		  id integer not null primary key,
		  level integer,
		  class text,
		  quality text,
		  diff_ms real,
		  score integer,
		  beat_match integer,
		  combo integer
	  );
	`
	if _, err := db.Exec(initStatement); nil != err {
		db.Close()
		return nil, fmt.Errorf("unable to create journal table: %w", err)
	}
	if nil == l {
		l = log.Discard()
	}
	return &Journal{db: db, log: l}, nil
}

func (j *Journal) Close() error {
	if nil == j.db {
		return nil
	}
	return j.db.Close()
}

func (j *Journal) Record(jd game.Judgement) {
	beatMatch := 0
	if jd.BeatMatch {
		beatMatch = 1
	}
	_, err := j.db.Exec(
		"insert into judgements(level, class, quality, diff_ms, score, beat_match, combo) values(?, ?, ?, ?, ?, ?, ?)",
		jd.Level, jd.Class.String(), jd.Quality.String(),
		float64(jd.Diff)/float64(time.Millisecond), jd.Score, beatMatch, jd.Combo,
	)
	if nil != err {
		j.log.Errorf("unable to record judgement: %v", err)
	}
}

// Summary aggregates all judgements, or only those of one level when
// level is not negative.
func (j *Journal) Summary(level int) (Summary, error) {
	s := Summary{
		Counts:  map[game.Quality]int{},
		ByClass: map[game.FrequencyClass]int{},
	}
	where, args := "", []interface{}{}
	if level >= 0 {
		where, args = " where level = ?", append(args, level)
	}

	rows, err := j.db.Query("select quality, class, count(*), coalesce(sum(score), 0) from judgements"+where+" group by quality, class", args...)
	if nil != err {
		return s, fmt.Errorf("unable to query judgements: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var quality, class string
		var count, points int
		if err := rows.Scan(&quality, &class, &count, &points); nil != err {
			return s, fmt.Errorf("unable to scan judgement counts: %w", err)
		}
		q := parseQuality(quality)
		s.Counts[q] += count
		s.Total += count
		s.Score += points
		if q == game.Miss {
			continue
		}
		if c, err := game.ParseFrequencyClass(class); nil == err {
			s.ByClass[c] += count
		}
	}
	if err := rows.Err(); nil != err {
		return s, err
	}

	cond := " where quality != 'miss'"
	if level >= 0 {
		cond += " and level = ?"
	}
	var n int
	var mean, meanSq float64
	row := j.db.QueryRow("select count(*), coalesce(avg(diff_ms), 0), coalesce(avg(diff_ms*diff_ms), 0) from judgements"+cond, args...)
	if err := row.Scan(&n, &mean, &meanSq); nil != err {
		return s, fmt.Errorf("unable to query offsets: %w", err)
	}
	s.Mean = ms(mean)
	if n > 1 {
		variance := (meanSq - mean*mean) * float64(n) / float64(n-1)
		if variance > 0 {
			s.Stdev = ms(math.Sqrt(variance))
		}
	}
	return s, nil
}

func ms(v float64) time.Duration {
	return time.Duration(math.Round(v * float64(time.Millisecond)))
}

func parseQuality(s string) game.Quality {
	for _, q := range game.Qualities {
		if q.String() == s {
			return q
		}
	}
	return game.Miss
}
