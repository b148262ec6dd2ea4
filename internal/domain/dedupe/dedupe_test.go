package dedupe_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/dedupe"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDeduper(t *testing.T) {
	ctx := context.Background()

	Convey("Given a fresh deduper", t, func() {
		d := dedupe.NewInMemoryDeduper()

		Convey("When recording an id twice", func() {
			first := d.SeenAndRecord(ctx, "sub-1")
			second := d.SeenAndRecord(ctx, "sub-1")

			Convey("Then only the retry reads as seen", func() {
				So(first, ShouldBeFalse)
				So(second, ShouldBeTrue)
				So(d.Size(), ShouldEqual, 1)
			})
		})

		Convey("When unrecording after a failed persist", func() {
			d.SeenAndRecord(ctx, "sub-2")
			d.Unrecord(ctx, "sub-2")

			Convey("Then the id becomes submittable again", func() {
				So(d.SeenAndRecord(ctx, "sub-2"), ShouldBeFalse)
			})
		})

		Convey("When unrecording an unknown id", func() {
			d.Unrecord(ctx, "never-seen")
			So(d.Size(), ShouldEqual, 0)
		})
	})

	Convey("Given a deduper bounded to 3 ids", t, func() {
		d := dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(3))
		for i := 0; i < 4; i++ {
			d.SeenAndRecord(ctx, fmt.Sprintf("sub-%d", i))
		}

		Convey("Then the oldest id is evicted first", func() {
			So(d.Size(), ShouldEqual, 3)
			So(d.SeenAndRecord(ctx, "sub-0"), ShouldBeFalse)
			So(d.SeenAndRecord(ctx, "sub-3"), ShouldBeTrue)
		})
	})

	Convey("Given concurrent submitters racing on the same id", t, func() {
		d := dedupe.NewInMemoryDeduper()
		var wg sync.WaitGroup
		wins := make(chan bool, 16)
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if !d.SeenAndRecord(ctx, "contested") {
					wins <- true
				}
			}()
		}
		wg.Wait()
		close(wins)

		Convey("Then exactly one wins the record", func() {
			So(len(wins), ShouldEqual, 1)
			So(d.Size(), ShouldEqual, 1)
		})
	})
}
