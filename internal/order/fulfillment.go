package order

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log"
	"strings"
	"time"
)

// Scheduler runs a function after a delay. The timer implementation is the
// production one; tests substitute a manual scheduler and advance virtual
// time deterministically.
type Scheduler interface {
	Schedule(d time.Duration, fn func())
}

type timerScheduler struct{}

func (timerScheduler) Schedule(d time.Duration, fn func()) { time.AfterFunc(d, fn) }

func NewTimerScheduler() Scheduler { return timerScheduler{} }

// Fulfillment simulates warehouse progress for demo-checkout orders:
// confirmed -> processing after processingDelay, processing -> shipped (with
// a generated tracking number) after shippingDelay. Each timer is bound to
// one order id, is fire-and-forget, and is lost if the process exits before
// it fires. Transitions go through the state machine, so an order cancelled
// in the meantime is left alone.
type Fulfillment struct {
	orders          Store
	sched           Scheduler
	processingDelay time.Duration
	shippingDelay   time.Duration
}

func NewFulfillment(orders Store, sched Scheduler, processingDelay, shippingDelay time.Duration) *Fulfillment {
	return &Fulfillment{
		orders:          orders,
		sched:           sched,
		processingDelay: processingDelay,
		shippingDelay:   shippingDelay,
	}
}

func (f *Fulfillment) Track(orderID string) {
	f.sched.Schedule(f.processingDelay, func() {
		if !f.advance(orderID, StatusProcessing, "") {
			return
		}
		f.sched.Schedule(f.shippingDelay, func() {
			f.advance(orderID, StatusShipped, newTrackingNumber())
		})
	})
}

func (f *Fulfillment) advance(orderID string, next Status, tracking string) bool {
	if _, err := f.orders.UpdateStatus(context.Background(), orderID, next, tracking); err != nil {
		log.Printf("[fulfillment] order %s not advanced to %s: %v", orderID, next, err)
		return false
	}
	log.Printf("[fulfillment] order %s -> %s", orderID, next)
	return true
}

func newTrackingNumber() string {
	b := make([]byte, 6)
	_, _ = rand.Read(b)
	return "TRK" + strings.ToUpper(hex.EncodeToString(b))
}
