package main

import (
	"fmt"

	"bsearch"
	"bsearch/structured_logger"
)

func main() {
	var logger bsearch.Logger = structured_logger.NewLogger("info")

	arr := []int{1, 3, 5, 7, 9, 11, 13}

	// results go to stdout, one per line; the trace goes to stderr
	for _, target := range []int{7, 4} {
		pos := bsearch.BinarySearch(arr, target)
		logger.Info().Value("target", target).Value("pos", pos).Msg("lookup")
		fmt.Println(pos)
	}
}
