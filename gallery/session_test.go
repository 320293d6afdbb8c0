package gallery

import (
	"context"
	"errors"
	"sync"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/thumbgrab/thumbgrab/youtube"
)

// fakeProber marks the listed tiers as existing. When gate is set, each
// probe waits for it or for cancellation.
type fakeProber struct {
	mu     sync.Mutex
	calls  []youtube.VideoID
	exists map[youtube.Tier]bool
	gate   chan struct{}
	err    error
}

func (f *fakeProber) Probe(ctx context.Context, id youtube.VideoID) (*youtube.Result, error) {
	f.mu.Lock()
	f.calls = append(f.calls, id)
	f.mu.Unlock()

	if f.gate != nil {
		select {
		case <-f.gate:
		case <-ctx.Done():
			return nil, &youtube.ProbeError{ID: id, Err: ctx.Err()}
		}
	}

	if f.err != nil {
		return nil, f.err
	}

	result := &youtube.Result{ID: id, Thumbnails: youtube.Candidates("img.test", id)}
	for i := range result.Thumbnails {
		result.Thumbnails[i].Exists = f.exists[result.Thumbnails[i].Tier]
	}
	if len(result.Available()) == 0 {
		return result, youtube.ErrNoThumbnails
	}
	return result, nil
}

func TestSubmit(t *testing.T) {
	Convey("Given a session", t, func() {
		prober := &fakeProber{exists: map[youtube.Tier]bool{youtube.TierHigh: true, youtube.TierDefault: true}}
		session := NewSession(prober)
		defer session.Close()

		Convey("A valid link yields its available thumbnails", func() {
			outcome := session.Submit(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
			So(outcome.Err, ShouldBeNil)
			So(outcome.Stale, ShouldBeFalse)
			So(outcome.Kind(), ShouldEqual, KindOK)
			So(outcome.Message(), ShouldBeEmpty)
			So(outcome.Ticket.ID, ShouldEqual, youtube.VideoID("dQw4w9WgXcQ"))

			thumbs := outcome.Thumbnails()
			So(thumbs, ShouldHaveLength, 2)
			So(thumbs[0].Tier, ShouldEqual, youtube.TierHigh)
			So(thumbs[1].Tier, ShouldEqual, youtube.TierDefault)
		})

		Convey("Invalid input never reaches the prober", func() {
			outcome := session.Submit(context.Background(), "not a url")
			So(outcome.Kind(), ShouldEqual, KindInvalidInput)
			So(outcome.Message(), ShouldEqual, MessageInvalidInput)
			So(outcome.Thumbnails(), ShouldBeNil)
			So(prober.calls, ShouldBeEmpty)
		})

		Convey("Every tier absent reads as no thumbnails", func() {
			prober.exists = nil
			outcome := session.Submit(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
			So(outcome.Kind(), ShouldEqual, KindNoThumbnails)
			So(outcome.Message(), ShouldEqual, MessageNoThumbnails)
		})

		Convey("A failed batch reads as a load failure", func() {
			prober.err = &youtube.ProbeError{ID: "dQw4w9WgXcQ", Err: errors.New("boom")}
			outcome := session.Submit(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
			So(outcome.Kind(), ShouldEqual, KindProbeFailure)
			So(outcome.Message(), ShouldEqual, MessageProbeFailure)
		})

		Convey("Tickets increase with every submission", func() {
			first := session.Submit(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
			second := session.Submit(context.Background(), "garbage")
			So(second.Ticket.Seq, ShouldBeGreaterThan, first.Ticket.Seq)
			So(session.Current(first.Ticket), ShouldBeFalse)
			So(session.Current(second.Ticket), ShouldBeTrue)
		})
	})
}

func TestStaleSubmission(t *testing.T) {
	Convey("Given a slow submission followed by a newer one", t, func() {
		prober := &fakeProber{
			exists: map[youtube.Tier]bool{youtube.TierMax: true},
			gate:   make(chan struct{}),
		}
		session := NewSession(prober)
		defer session.Close()

		firstTicket, firstCtx := session.Begin(context.Background(), "aaaaaaaaaaa")
		done := make(chan Outcome, 1)
		go func() { done <- session.Run(firstCtx, firstTicket) }()

		secondTicket, secondCtx := session.Begin(context.Background(), "bbbbbbbbbbb")

		Convey("The older batch is cancelled and flagged stale", func() {
			first := <-done
			So(first.Stale, ShouldBeTrue)
			So(errors.Is(first.Err, context.Canceled), ShouldBeTrue)
			So(firstCtx.Err(), ShouldNotBeNil)
		})

		Convey("The newer batch completes and stays current", func() {
			<-done
			close(prober.gate)
			second := session.Run(secondCtx, secondTicket)
			So(second.Stale, ShouldBeFalse)
			So(second.Err, ShouldBeNil)
			So(second.Result.ID, ShouldEqual, youtube.VideoID("bbbbbbbbbbb"))
		})
	})

	Convey("Closing the session cancels the in-flight batch", t, func() {
		session := NewSession(&fakeProber{})
		_, ctx := session.Begin(context.Background(), "aaaaaaaaaaa")
		session.Close()
		So(ctx.Err(), ShouldEqual, context.Canceled)
	})
}
