// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// The snapshotcheck command reports snapshot declarations and their uses.
//
// Usage:
//
//	snapshotcheck [-config file.yaml] packages...
//	go vet -vettool=$(which snapshotcheck) packages...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"code.hybscloud.com/either/stability/snapshotcheck"
)

func main() {
	singlechecker.Main(snapshotcheck.Analyzer)
}
