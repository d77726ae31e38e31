package cmd

import (
	"flag"
	"strconv"
)

type qualityValue struct {
	q *uint8
}

func (v qualityValue) String() string {
	if v.q == nil {
		return ""
	}
	return strconv.Itoa(int(*v.q))
}

func (v qualityValue) Set(s string) error {
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return err
	}
	if n < 1 || n > 100 {
		return strconv.ErrRange
	}
	*v.q = uint8(n)
	return nil
}

func qualityVar(fs *flag.FlagSet, q *uint8) {
	fs.Var(qualityValue{q}, "q", "jpeg quality, 1-100")
}
