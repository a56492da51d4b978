package extraction

import "testing"

func TestAnalyzeLabeledTaskLine(t *testing.T) {
	text := "今日はやることがある\nタスク：資料を準備する\n短い"

	entities := NewTaskAnalyzer().Analyze(text)

	if len(entities) != 1 {
		t.Fatalf("Expected exactly 1 entity, got %d", len(entities))
	}
	got := entities[0]
	if got.Title != "資料を準備する" {
		t.Errorf("Expected title 資料を準備する, got %s", got.Title)
	}
	if got.Priority != PriorityMedium {
		t.Errorf("Expected default priority medium, got %s", got.Priority)
	}
	if got.Category != DefaultCategory {
		t.Errorf("Expected default category, got %s", got.Category)
	}
	if got.Kind != KindTask {
		t.Errorf("Expected task kind, got %s", got.Kind)
	}
	if got.Description != got.Title {
		t.Errorf("Expected description to mirror title, got %s", got.Description)
	}
}

func TestAnalyzeLabelWithoutColon(t *testing.T) {
	entities := NewTaskAnalyzer().Analyze("タスク 資料作成 高")

	if len(entities) != 1 {
		t.Fatalf("Expected 1 entity, got %d", len(entities))
	}
	if entities[0].Priority != PriorityHigh {
		t.Errorf("Expected priority high from 高 keyword, got %s", entities[0].Priority)
	}
	if entities[0].SourceLine != "タスク 資料作成 高" {
		t.Errorf("Expected source line preserved, got %s", entities[0].SourceLine)
	}
}

func TestAnalyzeLabelMustLeadLine(t *testing.T) {
	// やること appears mid-line, not as a leading label
	entities := NewTaskAnalyzer().Analyze("今日はやることがある")

	if len(entities) != 0 {
		t.Fatalf("Expected no entities, got %d", len(entities))
	}
}

func TestAnalyzeQuotedBeatsBulleted(t *testing.T) {
	entities := NewTaskAnalyzer().Analyze("- 「会議資料を作る」を今日中に")

	if len(entities) != 1 {
		t.Fatalf("Expected 1 entity, got %d", len(entities))
	}
	if entities[0].Title != "会議資料を作る" {
		t.Errorf("Expected quoted phrase as title, got %s", entities[0].Title)
	}
}

func TestAnalyzeBulletMarkers(t *testing.T) {
	text := "- 牛乳を買いに行く\n• レポートを仕上げる\n* 部屋の掃除をする"

	entities := NewTaskAnalyzer().Analyze(text)

	if len(entities) != 3 {
		t.Fatalf("Expected 3 entities, got %d", len(entities))
	}
	wantTitles := []string{"牛乳を買いに行く", "レポートを仕上げる", "部屋の掃除をする"}
	for i, want := range wantTitles {
		if entities[i].Title != want {
			t.Errorf("Expected title %s at %d, got %s", want, i, entities[i].Title)
		}
	}
}

func TestAnalyzeShortTitleConsumesLine(t *testing.T) {
	// the bullet matches first with a too-short title; the line must not
	// fall through to another pattern
	entities := NewTaskAnalyzer().Analyze("- 掃除")

	if len(entities) != 0 {
		t.Fatalf("Expected short title to be discarded, got %d entities", len(entities))
	}
}

func TestAnalyzeSkipsBlankLines(t *testing.T) {
	entities := NewTaskAnalyzer().Analyze("\n   \n\t\nタスク：請求書を送付する\n\n")

	if len(entities) != 1 {
		t.Fatalf("Expected 1 entity, got %d", len(entities))
	}
}

func TestAnalyzeEnglishLabels(t *testing.T) {
	text := "todo: ship the weekly report\nTASK: review pull requests"

	entities := NewTaskAnalyzer().Analyze(text)

	if len(entities) != 2 {
		t.Fatalf("Expected 2 entities, got %d", len(entities))
	}
	if entities[0].Title != "ship the weekly report" {
		t.Errorf("Expected todo remainder, got %s", entities[0].Title)
	}
	if entities[1].Title != "review pull requests" {
		t.Errorf("Expected task remainder, got %s", entities[1].Title)
	}
}

func TestAnalyzeEventLabels(t *testing.T) {
	text := "予定：歯医者の定期検診\n会議：来期の予算レビュー"

	entities := NewEventAnalyzer().Analyze(text)

	if len(entities) != 2 {
		t.Fatalf("Expected 2 entities, got %d", len(entities))
	}
	for _, e := range entities {
		if e.Kind != KindEvent {
			t.Errorf("Expected event kind, got %s", e.Kind)
		}
		if e.Priority != "" {
			t.Errorf("Expected no priority on events, got %s", e.Priority)
		}
		if e.Category != DefaultCategory {
			t.Errorf("Expected default category on events, got %s", e.Category)
		}
	}
	if entities[0].Title != "歯医者の定期検診" {
		t.Errorf("Expected 歯医者の定期検診, got %s", entities[0].Title)
	}
}

func TestAnalyzeTaskLabelNotEventLabel(t *testing.T) {
	entities := NewEventAnalyzer().Analyze("タスク：資料を準備する")

	if len(entities) != 0 {
		t.Fatalf("Expected task label to be ignored in event mode, got %d", len(entities))
	}
}

func TestClassifyPriorityKeywords(t *testing.T) {
	tests := []struct {
		line string
		want Priority
	}{
		{"タスク：緊急で役員会の資料を直す", PriorityUrgent},
		{"タスク：高めの優先度で進める", PriorityHigh},
		{"タスク：中くらいの作業", PriorityMedium},
		{"タスク：低めでよい雑務", PriorityLow},
		{"タスク：キーワードなしの作業", PriorityMedium},
		// first match in fixed order wins
		{"タスク：緊急かつ高優先の対応", PriorityUrgent},
	}

	for _, tt := range tests {
		entities := NewTaskAnalyzer().Analyze(tt.line)
		if len(entities) != 1 {
			t.Fatalf("Expected 1 entity for %q, got %d", tt.line, len(entities))
		}
		if entities[0].Priority != tt.want {
			t.Errorf("Expected priority %s for %q, got %s", tt.want, tt.line, entities[0].Priority)
		}
	}
}

func TestClassifyCategoryKeywords(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"タスク：仕事の報告書をまとめる", "Work"},
		{"タスク：プライベートの旅行を計画する", "Personal"},
		{"タスク：勉強の計画を立て直す", "Study"},
		{"タスク：健康のために走り込む", "Health"},
		{"タスク：分類なしのメモ書き", DefaultCategory},
	}

	for _, tt := range tests {
		entities := NewTaskAnalyzer().Analyze(tt.line)
		if len(entities) != 1 {
			t.Fatalf("Expected 1 entity for %q, got %d", tt.line, len(entities))
		}
		if entities[0].Category != tt.want {
			t.Errorf("Expected category %s for %q, got %s", tt.want, tt.line, entities[0].Category)
		}
	}
}

func TestIsTaskRelated(t *testing.T) {
	if !IsTaskRelated("明日までに資料を作成する") {
		t.Error("Expected 作成 keyword to flag task relation")
	}
	if IsTaskRelated("とてもいい天気ですね") {
		t.Error("Expected small talk to stay unflagged")
	}
}

func TestIsEventRelated(t *testing.T) {
	if !IsEventRelated("来週の金曜にセミナーがあります") {
		t.Error("Expected セミナー keyword to flag event relation")
	}
	if IsEventRelated("とてもいい天気ですね") {
		t.Error("Expected small talk to stay unflagged")
	}
}
