// Copyright 2025 Lumawell
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


// Command seedkb writes a starter knowledge base of topic-tagged
// markdown files so the engine has a real corpus to index. Filenames
// carry the topic keyword the classifier looks for.
package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"
)

var kbDir = flag.String("dir", "kb", "knowledge-base directory to seed")

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

var documents = map[string]string{
	"diet-basics.md": `# Diet fundamentals

Whole foods come first: vegetables, fruit, legumes, whole grains, and
lean protein sources cover most micronutrient needs without tracking.
Daily protein intake of 1.6 to 2.2 grams per kilogram of body weight
preserves lean mass during fat loss and supports recovery from
training.

Energy balance decides weight change. A moderate deficit of 300 to 500
kilocalories per day produces sustainable fat loss without the rebound
that crash diets invite. Fiber at 25 to 35 grams per day and water at
roughly 30 milliliters per kilogram round out the baseline.

Meal timing matters far less than totals. Spreading protein across
three or four meals is convenient for appetite control, not a hard
requirement.`,

	"exercise-program.md": `# Exercise programming

Strength training two to four sessions per week, built around squat,
hinge, push, and pull patterns, is the backbone of any program. Work
each muscle group with about ten hard sets per week and add load or
repetitions gradually.

Aerobic work complements lifting: 150 minutes of moderate cardio per
week, or 75 minutes of vigorous work, maintains cardiovascular health.
Zone 2 sessions of 30 to 45 minutes are easy to recover from and can
sit on lifting off-days.

Progress stalls are usually recovery problems. Keep one or two rest
days per week and deload every four to eight weeks when performance
drops.`,

	"skincare-routine.md": `# Skincare routine

A minimal routine beats an elaborate one applied inconsistently.
Morning: gentle cleanser, moisturizer, broad-spectrum SPF 30 or
higher. Evening: cleanser, treatment actives, moisturizer.

Introduce one active at a time. Retinoids build collagen and clear
pores but need a two-week ramp starting at twice weekly. Vitamin C in
the morning pairs with sunscreen against photoaging. Exfoliating acids
stay at two or three nights per week.

Sunscreen is the single highest-leverage product. Reapply every two
hours of direct sun exposure.`,

	"sleep-hygiene.md": `# Sleep hygiene

Adults need seven to nine hours per night, anchored by a consistent
wake time — consistency of schedule matters more than total duration
on any single night.

Bright light within an hour of waking and dim, warm light in the
evening keep the circadian rhythm aligned. Caffeine has a five-hour
half-life; a cutoff eight hours before bed avoids stacked stimulation.
Keep the bedroom cool, around 18 degrees Celsius, dark, and quiet.

If sleep does not come within twenty minutes, leave the bed and do
something dull in low light until drowsy. The bed should cue sleep,
not wakeful frustration.`,

	"psychology-stress.md": `# Stress and mood management

Chronic stress responds to structure: a daily walk, a fixed sleep
schedule, and a short wind-down ritual lower baseline arousal more
reliably than occasional grand gestures.

Box breathing — four counts in, four held, four out, four held —
downshifts the nervous system in under two minutes and works anywhere.
Journaling for ten minutes moves rumination out of working memory.

Mood tracks behavior. Behavioral activation, scheduling small
rewarding activities even without motivation, is among the best
validated tools for low mood. Persistent anxiety or depression
deserves professional support, not solo troubleshooting.`,
}

func main() {
	if err := os.MkdirAll(*kbDir, 0o755); err != nil {
		panic(err)
	}

	for name, content := range documents {
		path := filepath.Join(*kbDir, name)
		if _, err := os.Stat(path); err == nil {
			slog.Info("skipping existing file", "path", path)
			continue
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			panic(err)
		}
		slog.Info("wrote seed document", "path", path)
	}

	slog.Info("knowledge base seeded", "dir", *kbDir, "documents", len(documents))
}
