//
//  Copyright 2021 The AVFS authors
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//  	http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.
//

package proc_test

import (
	"io"
	"runtime"
	"testing"
	"time"

	"github.com/coreshell/coreshell/proc"
)

func skipIfNoShell(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no POSIX shell to exercise the pipeline on this platform")
	}
}

func TestSpawnPipeline(t *testing.T) {
	skipIfNoShell(t)

	p1, err := proc.Spawn("/bin/echo", []string{"hello", "pipeline"}, proc.Options{
		Stdout: proc.RedirectPipe,
	})
	if err != nil {
		t.Fatalf("Spawn p1: want error to be nil, got %v", err)
	}

	p2, err := proc.Spawn("/usr/bin/tr", []string{"a-z", "A-Z"}, proc.Options{
		Stdin:  proc.RedirectFromFD(p1.Stdout),
		Stdout: proc.RedirectPipe,
	})
	if err != nil {
		t.Fatalf("Spawn p2: want error to be nil, got %v", err)
	}

	p1.Stdout.Close()

	out, err := io.ReadAll(p2.Stdout.File())
	if err != nil {
		t.Fatalf("ReadAll: want error to be nil, got %v", err)
	}

	want := "HELLO PIPELINE\n"
	if string(out) != want {
		t.Errorf("pipeline output: want %q, got %q", want, out)
	}

	status1, err := p1.Wait()
	if err != nil || !status1.Success() {
		t.Errorf("p1.Wait: want success, got (%+v, %v)", status1, err)
	}

	status2, err := p2.Wait()
	if err != nil || !status2.Success() {
		t.Errorf("p2.Wait: want success, got (%+v, %v)", status2, err)
	}
}

func TestSpawnTimedWaitAndKill(t *testing.T) {
	skipIfNoShell(t)

	p, err := proc.Spawn("/bin/sleep", []string{"5"}, proc.Options{})
	if err != nil {
		t.Fatalf("Spawn: want error to be nil, got %v", err)
	}

	if _, exited, err := p.TimedWait(50 * time.Millisecond); err != nil || exited {
		t.Fatalf("TimedWait: want (not exited, nil), got (%v, %v)", exited, err)
	}

	if err := p.Kill(); err != nil {
		t.Fatalf("Kill: want error to be nil, got %v", err)
	}

	status, err := p.Wait()
	if err != nil {
		t.Fatalf("Wait: want error to be nil, got %v", err)
	}

	if !status.Signaled {
		t.Errorf("Wait after Kill: want Signaled=true, got %+v", status)
	}
}

func TestResolvePath(t *testing.T) {
	skipIfNoShell(t)

	p, err := proc.ResolvePath("echo", nil)
	if err != nil {
		t.Fatalf("ResolvePath: want error to be nil, got %v", err)
	}

	if p.Initial != "echo" {
		t.Errorf("ResolvePath.Initial: want %q, got %q", "echo", p.Initial)
	}

	if p.Recall == "" {
		t.Errorf("ResolvePath.Recall: want non-empty")
	}
}
