package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/koyomi-lab/koyomi/pkg/domain/model"
	"github.com/koyomi-lab/koyomi/pkg/repository"
	"github.com/m-mizutani/gt"
)

func TestMemorySource(t *testing.T) {
	ctx := context.Background()
	src := repository.NewMemory()

	gt.NoError(t, src.Add(
		model.Annotation{Date: model.NewDate(2014, time.March, 17), Label: "St. Patrick's Day"},
		model.Annotation{Date: model.NewDate(2014, time.July, 4), Label: "Independence Day"},
		model.Annotation{Date: model.NewDate(2015, time.January, 1), Label: "New Year's Day"},
	))

	annotations, err := src.Annotations(ctx, 2014)
	gt.NoError(t, err)
	gt.Equal(t, len(annotations), 2)
	gt.Equal(t, annotations[0].Label, "St. Patrick's Day")

	// Mutating the returned slice must not affect the store
	annotations[0].Label = "clobbered"
	again, err := src.Annotations(ctx, 2014)
	gt.NoError(t, err)
	gt.Equal(t, again[0].Label, "St. Patrick's Day")
}

func TestMemorySourceRejectsInvalid(t *testing.T) {
	src := repository.NewMemory()

	err := src.Add(model.Annotation{Date: model.NewDate(2014, time.March, 17)})
	gt.Error(t, err)

	annotations, err := src.Annotations(context.Background(), 2014)
	gt.NoError(t, err)
	gt.Equal(t, len(annotations), 0)
}
