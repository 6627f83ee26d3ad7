// Copyright 2026 Dimitrij Drus <dadrus@gmx.de>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package logging

import "github.com/rs/zerolog"

// severity values of RFC 5424 as expected by GELF consumers in the level field.
const (
	syslogEmergency int8 = 0
	syslogAlert     int8 = 1
	syslogCritical  int8 = 2
	syslogError     int8 = 3
	syslogWarning   int8 = 4
	syslogInfo      int8 = 6
	syslogDebug     int8 = 7
)

// nolint: gochecknoglobals
var syslogSeverities = map[zerolog.Level]int8{
	zerolog.TraceLevel: syslogDebug,
	zerolog.DebugLevel: syslogDebug,
	zerolog.InfoLevel:  syslogInfo,
	zerolog.WarnLevel:  syslogWarning,
	zerolog.ErrorLevel: syslogError,
	zerolog.FatalLevel: syslogCritical,
	zerolog.PanicLevel: syslogAlert,
}

func syslogSeverity(level zerolog.Level) int8 {
	if severity, ok := syslogSeverities[level]; ok {
		return severity
	}

	return syslogEmergency
}
