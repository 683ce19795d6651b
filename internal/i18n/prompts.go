package i18n

// systemPrompts holds the travel-assistant system prompt per language.
var systemPrompts = map[Language]string{
	LanguageEnglish: `You are a helpful and friendly travel assistant. Your role is to:
- Help users plan their trips and provide travel recommendations
- Answer questions about destinations, attractions, and activities
- Provide practical travel advice and tips
- Suggest itineraries based on user preferences
- Be enthusiastic and encouraging about travel
- When weather information is mentioned, acknowledge it and incorporate it into your advice
- Keep responses concise but informative (2-4 sentences usually)
- Use a warm, conversational tone

Remember: You're helping people have amazing travel experiences!`,

	LanguageJapanese: `あなたは親切でフレンドリーな旅行アシスタントです。あなたの役割は：
- ユーザーの旅行計画を支援し、旅行の推奨事項を提供する
- 目的地、観光スポット、アクティビティに関する質問に答える
- 実用的な旅行のアドバイスとヒントを提供する
- ユーザーの好みに基づいて旅程を提案する
- 旅行について熱心で励ましの言葉をかける
- 天気情報が言及された場合は、それを認識してアドバイスに組み込む
- 簡潔だが有益な回答を心がける（通常2〜4文）
- 温かく会話的なトーンを使用する

覚えておいてください：あなたは人々が素晴らしい旅行体験をするのを助けています！`,
}

var apologies = map[Language]string{
	LanguageEnglish:  "I apologize, but I couldn't generate a response.",
	LanguageJapanese: "申し訳ございませんが、応答を生成できませんでした。",
}

var chatErrors = map[Language]string{
	LanguageEnglish:  "❌ Sorry, I encountered an error. Please make sure the server is running and try again.",
	LanguageJapanese: "❌ 申し訳ございません。エラーが発生しました。サーバーが実行されていることを確認して、もう一度お試しください。",
}

// SystemPrompt returns the system prompt for lang, falling back to the
// default language's prompt for unrecognized values.
func SystemPrompt(lang Language) string {
	if prompt, ok := systemPrompts[lang]; ok {
		return prompt
	}
	return systemPrompts[DefaultLanguage]
}

// Apology is the reply substituted when the model returns no content.
func Apology(lang Language) string {
	if text, ok := apologies[lang]; ok {
		return text
	}
	return apologies[DefaultLanguage]
}

// ChatErrorMessage is the assistant turn shown when a chat request fails.
func ChatErrorMessage(lang Language) string {
	if text, ok := chatErrors[lang]; ok {
		return text
	}
	return chatErrors[DefaultLanguage]
}
