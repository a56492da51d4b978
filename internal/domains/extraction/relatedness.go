package extraction

import "strings"

// Coarse whole-text gates, separate from the line patterns on purpose: they
// answer "is it worth extracting from this transcript at all", not "which
// line holds what".

var taskKeywords = []string{
	"やる", "する", "完了", "終了", "開始", "準備", "確認", "チェック",
	"予定", "スケジュール", "締切", "期限", "提出", "報告",
	"会議", "打ち合わせ", "ミーティング", "面談", "訪問", "出張",
	"買い物", "購入", "注文", "予約", "申し込み", "申請",
	"作成", "制作", "編集", "修正", "更新", "変更", "改善",
	"調査", "研究", "分析", "検討", "検証", "テスト",
}

var eventKeywords = []string{
	"会議", "ミーティング", "打ち合わせ", "面談", "訪問", "出張",
	"予定", "スケジュール", "アポイント", "約束",
	"イベント", "セミナー", "研修", "講習", "講座", "ワークショップ",
	"パーティー", "飲み会", "食事会", "ランチ", "ディナー",
	"誕生日", "記念日", "祝日", "休日", "祝賀", "お祝い",
}

func containsAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// IsTaskRelated reports whether the text mentions anything actionable.
func IsTaskRelated(text string) bool {
	return containsAny(text, taskKeywords)
}

// IsEventRelated reports whether the text mentions anything schedulable.
func IsEventRelated(text string) bool {
	return containsAny(text, eventKeywords)
}
