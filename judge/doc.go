/*
Package judge solves online-judge exercises on binary trees.

Each exercise reads a number of test cases from its input, followed by one tree
per case, and writes one answer per case. Trees are read with the readers of
package bintree; the solvers decompose them only through tree handles and
release every handle they obtain, so a complete run leaves no live nodes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package judge

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'arbin.judge'.
func tracer() tracing.Trace {
	return tracing.Select("arbin.judge")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("judge: "+msg, msgargs...)
		panic(msg)
	}
}
