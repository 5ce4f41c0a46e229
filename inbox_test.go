// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alt_test

import (
	"testing"
	"time"

	"code.hybscloud.com/alt"
	"code.hybscloud.com/iox"
)

func TestInboxPutGet(t *testing.T) {
	skipRace(t)
	in := alt.NewInbox[string](4, nil)
	if err := in.Put("a"); err != nil {
		t.Fatalf("Put error: %v", err)
	}
	if err := in.Put("b"); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	v, err := in.Get()
	if err != nil || v != "a" {
		t.Fatalf("Get got (%q, %v), want (a, nil)", v, err)
	}
	v, err = in.Get()
	if err != nil || v != "b" {
		t.Fatalf("Get got (%q, %v), want (b, nil)", v, err)
	}
	if _, err = in.Get(); !iox.IsWouldBlock(err) {
		t.Fatalf("expected would-block on empty inbox, got %v", err)
	}
}

func TestInboxFull(t *testing.T) {
	skipRace(t)
	in := alt.NewInbox[int](2, nil)
	if err := in.Put(1); err != nil {
		t.Fatalf("Put error: %v", err)
	}
	if err := in.Put(2); err != nil {
		t.Fatalf("Put error: %v", err)
	}
	if err := in.Put(3); !iox.IsWouldBlock(err) {
		t.Fatalf("expected would-block on full inbox, got %v", err)
	}
}

func TestCaseInboxFires(t *testing.T) {
	skipRace(t)
	in := alt.NewInbox[int](4, nil)
	if err := in.Put(5); err != nil {
		t.Fatalf("Put error: %v", err)
	}
	set := alt.New(
		alt.CaseInbox(in, ident[int]),
	)
	out, err := alt.Run(set, alt.Biased)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if out.Index != 0 || out.Value != 5 {
		t.Fatalf("outcome got (%d, %d), want (0, 5)", out.Index, out.Value)
	}
}

func TestInboxWakesSelect(t *testing.T) {
	skipRace(t)
	var n alt.Notifier
	in := alt.NewInbox[int](4, &n)

	go func() {
		time.Sleep(10 * time.Millisecond)
		in.Put(77)
	}()

	set := alt.New(
		alt.CaseInbox(in, ident[int]),
	).Via(&n)
	out, err := alt.Run(set, alt.Biased)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if out.Index != 0 || out.Value != 77 {
		t.Fatalf("outcome got (%d, %d), want (0, 77)", out.Index, out.Value)
	}
}

func TestInboxStream(t *testing.T) {
	skipRace(t)
	const total = 100
	var n alt.Notifier
	in := alt.NewInbox[int](4, &n)

	go func() {
		for i := range total {
			for in.Put(i) != nil {
			}
		}
	}()

	// one selection per message: arrival order is the enqueue order
	for want := range total {
		set := alt.New(
			alt.CaseInbox(in, ident[int]),
		).Via(&n)
		out, err := alt.Run(set, alt.Biased)
		if err != nil {
			t.Fatalf("Run error: %v", err)
		}
		if out.Value != want {
			t.Fatalf("message got %d, want %d", out.Value, want)
		}
	}
}
