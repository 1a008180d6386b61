package cmd

import (
	"io"

	"github.com/cheggaaa/pb/v3"
)

// barObserver renders sync progress. The bar is created on the first
// callback, once the total is known.
type barObserver struct {
	w   io.Writer
	bar *pb.ProgressBar
}

func (o *barObserver) start(total int) {
	if o.bar == nil {
		o.bar = pb.Full.New(total).SetWriter(o.w).Start()
	}
}

func (o *barObserver) Progress(done, total int) {
	o.start(total)
	o.bar.SetCurrent(int64(done))
}

func (o *barObserver) Done(total int) {
	o.start(total)
	o.bar.SetCurrent(int64(total))
	o.bar.Finish()
}
