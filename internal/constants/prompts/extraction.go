package prompts

var (
	TASK_EXTRACTION = SYS_PROMPT{
		Intent:         "TaskExtraction",
		CurrentVersion: 0.1,
		Items: map[float32]PromptDefinition{
			0.1: {
				Version: 0.1,
				System:  "あなたはタスク抽出の専門家です。テキストからタスクを抽出し、JSON形式で返してください。",
				Template: `
以下のテキストからタスク（やるべきこと）を抽出してください。
タスクの形式で返してください：

テキスト：
{text}

抽出されたタスク（JSON形式）：
`,
			},
		},
	}

	EVENT_EXTRACTION = SYS_PROMPT{
		Intent:         "EventExtraction",
		CurrentVersion: 0.1,
		Items: map[float32]PromptDefinition{
			0.1: {
				Version: 0.1,
				System:  "あなたはイベント抽出の専門家です。テキストからイベントを抽出し、JSON形式で返してください。",
				Template: `
以下のテキストからイベント（予定、スケジュール）を抽出してください。
イベントの形式で返してください：

テキスト：
{text}

抽出されたイベント（JSON形式）：
`,
			},
		},
	}

	SUMMARIZE = SYS_PROMPT{
		Intent:         "Summarize",
		CurrentVersion: 0.1,
		Items: map[float32]PromptDefinition{
			0.1: {
				Version:  0.1,
				System:   "あなたは文字起こし結果を整理するアシスタントです。",
				Template: "以下の文字起こし結果を簡潔に要約してください：\n\n{text}",
			},
		},
	}
)
