package directory_test

import (
	"context"
	"testing"

	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/adapters/directory"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMemDirectory(t *testing.T) {
	ctx := context.Background()

	Convey("Given a directory with one registered profile", t, func() {
		d := directory.NewMemDirectory()
		d.Register("trainer-001", directory.Profile{Name: "Ada Trainer", Team: "Onboarding"})

		Convey("When resolving known and unknown ids together", func() {
			profiles, err := d.Resolve(ctx, []string{"trainer-001", "trainer-999"})
			So(err, ShouldBeNil)

			Convey("Then the known id resolves to its profile", func() {
				So(profiles["trainer-001"], ShouldResemble, directory.Profile{Name: "Ada Trainer", Team: "Onboarding"})
			})

			Convey("Then the unknown id falls back to itself", func() {
				So(profiles["trainer-999"], ShouldResemble, directory.Profile{Name: "trainer-999"})
			})
		})

		Convey("When re-registering an id", func() {
			d.Register("trainer-001", directory.Profile{Name: "Ada T.", Team: "Delivery"})
			profiles, _ := d.Resolve(ctx, []string{"trainer-001"})

			Convey("Then the profile is replaced", func() {
				So(profiles["trainer-001"].Team, ShouldEqual, "Delivery")
			})
		})

		Convey("When flattening to names", func() {
			profiles, _ := d.Resolve(ctx, []string{"trainer-001", "trainer-999"})
			names := directory.Names(profiles)

			So(names["trainer-001"], ShouldEqual, "Ada Trainer")
			So(names["trainer-999"], ShouldEqual, "trainer-999")
		})
	})
}
