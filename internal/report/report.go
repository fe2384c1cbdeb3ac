// Package report renders an entropy.Report as the human-readable lines
// entropic.c's main() prints (during the run, via rept_cycle, and at EOF),
// plus an optional JSON form that is a domain-stack addition.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lcn2/entropic/internal/entropy"
)

// WriteProgress renders one rept_cycle progress block: up to three lines
// (high/low/median) plus a trailing blank line, matching main()'s
// "after record %d ..." block. Nothing is written if no high estimate is
// available yet.
func WriteProgress(w io.Writer, recnum uint64, overall entropy.Overall) {
	if overall.HighEntropy.Valid {
		fmt.Fprintf(w, "after record %d for %d bits: high entropy: %f\n",
			recnum, overall.HighBitCnt, overall.HighEntropy.Bits)
	}
	if overall.LowEntropy.Valid {
		fmt.Fprintf(w, "after record %d for %d bits: low entropy: %f\n",
			recnum, overall.LowBitCnt, overall.LowEntropy.Bits)
	}
	if overall.HighEntropy.Valid && overall.LowEntropy.Valid {
		fmt.Fprintf(w, "after record %d for %d bits: median entropy: %f\n",
			recnum, overall.LowBitCnt, overall.MeanEntropy.Bits)
	}
	if overall.HighEntropy.Valid {
		fmt.Fprintln(w)
	}
}

// WriteFinal renders the end-of-run "Entropy report:" block, with
// "not enough data" lines standing in for any estimate that never became
// valid.
func WriteFinal(w io.Writer, recnum uint64, overall entropy.Overall) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Entropy report:")

	if overall.HighEntropy.Valid {
		fmt.Fprintf(w, "record count: %d with %d bits: high entropy: %f\n",
			recnum, overall.HighBitCnt, overall.HighEntropy.Bits)
	} else {
		fmt.Fprintln(w, "Error: not enough data to calculate high entropy estimate")
	}

	if overall.LowEntropy.Valid {
		fmt.Fprintf(w, "record count: %d with %d bits: low entropy: %f\n",
			recnum, overall.LowBitCnt, overall.LowEntropy.Bits)
	} else {
		fmt.Fprintln(w, "Error: not enough data to calculate low entropy estimate")
	}

	if overall.HighEntropy.Valid && overall.LowEntropy.Valid {
		fmt.Fprintf(w, "high, median and low entropy: %f %f %f\n\n",
			overall.HighEntropy.Bits, overall.MeanEntropy.Bits, overall.LowEntropy.Bits)
	} else {
		fmt.Fprintln(w, "Error: not enough data to calculate median entropy estimate")
	}
}

// jsonReport is the -j machine-readable rendering of an entropy.Overall.
// A flat struct like this does not warrant a third-party JSON library;
// encoding/json is the right tool here.
type jsonReport struct {
	RecordCount uint64        `json:"record_count"`
	High        *jsonEstimate `json:"high,omitempty"`
	Low         *jsonEstimate `json:"low,omitempty"`
	Mean        *jsonEstimate `json:"mean,omitempty"`
}

type jsonEstimate struct {
	Bits     float64 `json:"bits"`
	BitCount int     `json:"bit_count"`
}

// WriteJSON renders overall as a single JSON object.
func WriteJSON(w io.Writer, recnum uint64, overall entropy.Overall) error {
	rep := jsonReport{RecordCount: recnum}
	if overall.HighEntropy.Valid {
		rep.High = &jsonEstimate{Bits: overall.HighEntropy.Bits, BitCount: overall.HighBitCnt}
	}
	if overall.LowEntropy.Valid {
		rep.Low = &jsonEstimate{Bits: overall.LowEntropy.Bits, BitCount: overall.LowBitCnt}
	}
	if overall.MeanEntropy.Valid {
		rep.Mean = &jsonEstimate{Bits: overall.MeanEntropy.Bits}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
