package domain

import "strings"

// MoveFile is one enumerated source file in a move job and the outcome of its
// copy to the local side.
type MoveFile struct {
	RemotePath string
	RelPath    string
	LocalPath  string
	Copied     bool
	Err        error
}

// MoveJob tracks a transactional move: the files enumerated before the copy,
// and per-file copy outcomes. Deletion may only ever target files from the
// copied set.
type MoveJob struct {
	ID         string
	RemoteRoot string
	LocalRoot  string
	Files      []MoveFile
}

func (j *MoveJob) Empty() bool {
	return len(j.Files) == 0
}

func (j *MoveJob) Copied() []MoveFile {
	var out []MoveFile
	for _, f := range j.Files {
		if f.Copied {
			out = append(out, f)
		}
	}
	return out
}

func (j *MoveJob) CopiedCount() int {
	return len(j.Copied())
}

func (j *MoveJob) FailedCount() int {
	return len(j.Files) - j.CopiedCount()
}

// MoveReport summarizes the delete phase of a move job. Warning carries a
// non-fatal partial-deletion outcome; the commit itself still succeeded.
type MoveReport struct {
	Deleted      int
	DeleteFailed int
	Warning      error
}

// Hidden reports whether a slash-separated relative path names a hidden entry
// or lives under one.
func Hidden(rel string) bool {
	for _, seg := range strings.Split(rel, "/") {
		if strings.HasPrefix(seg, ".") {
			return true
		}
	}
	return false
}
