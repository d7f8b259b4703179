// Copyright 2026 The zram-generator Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package virt

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "detect-virt")
	if err := ioutil.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDetectVirtProbe(t *testing.T) {
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("/bin/sh not available")
	}

	tests := []struct {
		body          string
		containerized bool
	}{
		{
			body:          "echo docker; exit 0",
			containerized: true,
		},
		{
			body:          "echo none; exit 1",
			containerized: false,
		},
		{
			body:          "exit 3",
			containerized: false,
		},
	}

	for i, tt := range tests {
		p := DetectVirtProbe{Path: writeScript(t, tt.body)}
		got, err := p.IsContainerized()
		if err != nil {
			t.Errorf("#%d: unexpected error: %v", i, err)
			continue
		}
		if got != tt.containerized {
			t.Errorf("#%d: expected %v, got %v", i, tt.containerized, got)
		}
	}
}

func TestDetectVirtProbeMissingBinary(t *testing.T) {
	p := DetectVirtProbe{Path: filepath.Join(t.TempDir(), "does-not-exist")}
	got, err := p.IsContainerized()
	var pe *EnvironmentProbeError
	if !errors.As(err, &pe) {
		t.Fatalf("expected EnvironmentProbeError, got %v", err)
	}
	if pe.Bin != p.Path {
		t.Errorf("expected bin %q, got %q", p.Path, pe.Bin)
	}
	if got {
		t.Errorf("expected false on error")
	}
}

func TestStaticProbe(t *testing.T) {
	boom := errors.New("boom")
	for _, p := range []StaticProbe{{Containerized: true}, {}, {Err: boom}} {
		got, err := p.IsContainerized()
		if got != p.Containerized || err != p.Err {
			t.Errorf("%+v: got (%v, %v)", p, got, err)
		}
	}
}
