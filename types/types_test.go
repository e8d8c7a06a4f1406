// SPDX-License-Identifier: MIT
package types

import (
	"context"
	"errors"
	"sync"
	"testing"
)

func TestSlice_String(t *testing.T) {
	tests := []struct {
		name string
		sl   Slice[int]
		want string
	}{
		{name: "nil", want: "[]"},
		{name: "single", sl: Slice[int]{2}, want: "[2]"},
		{name: "many", sl: Slice[int]{0, 4, 1}, want: "[0,4,1]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sl.String(); got != tt.want {
				t.Errorf("Slice.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSlice_Sum(t *testing.T) {
	if got := (Slice[uint]{1, 2, 3}).Sum(); got != 6 {
		t.Errorf("Slice.Sum() = %v, want %v", got, 6)
	}
}

func TestSafeCounter(t *testing.T) {
	var (
		c  SafeCounter
		wg sync.WaitGroup
	)

	for index := 0; index < 50; index++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Inc()
		}()
	}
	wg.Wait()

	if got := c.Value(); got != 50 {
		t.Errorf("SafeCounter.Value() = %v, want %v", got, 50)
	}
}

func TestMonitorChannels(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")

	type args struct {
		operations int
		signals    []error
	}
	tests := []struct {
		name     string
		args     args
		wantErrs []error
		wantErr  bool
	}{
		{name: "all done", args: args{3, []error{nil, nil, nil}}},
		{name: "invalid count", args: args{0, nil}, wantErrs: []error{ErrInvalidGoroutineCount}, wantErr: true},
		{name: "joined errors", args: args{3, []error{errA, nil, errB}}, wantErrs: []error{errA, errB}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			done := make(chan bool, len(tt.args.signals))
			errChan := make(chan error, len(tt.args.signals))

			for _, signal := range tt.args.signals {
				go func(e error) {
					if e != nil {
						errChan <- e
						return
					}
					done <- true
				}(signal)
			}

			err := MonitorChannels(context.Background(), tt.args.operations, done, errChan, "operation")
			if (err != nil) != tt.wantErr {
				t.Errorf("MonitorChannels() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			for _, want := range tt.wantErrs {
				if !errors.Is(err, want) {
					t.Errorf("MonitorChannels() error = %v, want %v", err, want)
				}
			}
		})
	}
}
