package copyutil

import (
	"github.com/curtisnewbie/chronon/util/errs"
	"github.com/jinzhu/copier"
	log "github.com/sirupsen/logrus"
)

func Copy(from any, toPtr any) {
	if err := copier.Copy(toPtr, from); err != nil {
		log.Errorf("Failed to copy value, %v", errs.WrapErr(err))
	}
}

func CopyNew[V any](from any) V {
	var v V
	Copy(from, &v)
	return v
}
