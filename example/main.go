package main

import (
	"fmt"
	"os"

	"github.com/mgnsk/lqueue"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	q := lqueue.New(
		lqueue.WithCapacity(128),
		lqueue.WithLogger(logger),
	)
	defer q.Free()

	for _, v := range []string{"banana", "apple", "cherry", "apple"} {
		if err := q.InsertTail(v); err != nil {
			logger.WithError(err).Error("insert failed")
			os.Exit(1)
		}
	}

	q.Sort()

	if _, err := q.DeleteDup(); err != nil {
		logger.WithError(err).Error("delete duplicates failed")
		os.Exit(1)
	}

	// Copy the head value into a fixed size buffer.
	buf := make([]byte, 8)
	e, err := q.RemoveHead(buf)
	if err != nil {
		logger.WithError(err).Error("remove failed")
		os.Exit(1)
	}
	defer e.Release()

	fmt.Println(e.Value, q.Values())
}
