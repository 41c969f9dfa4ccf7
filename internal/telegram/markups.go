package telegram

import (
	tb "gopkg.in/telebot.v3"
)

const (
	btnTodayText    = "📅 Сьогодні"
	btnTomorrowText = "🔜 Завтра"
)

// markups aggregates the keyboards used by the bot. The main keyboard is a
// persistent reply keyboard, not an inline one, so users always have the two
// schedule shortcuts at hand.
type markups struct {
	main *tb.ReplyMarkup

	today    tb.Btn
	tomorrow tb.Btn
}

func newMarkups() *markups {
	main := &tb.ReplyMarkup{ResizeKeyboard: true}

	today := main.Text(btnTodayText)
	tomorrow := main.Text(btnTomorrowText)
	main.Reply(main.Row(today, tomorrow))

	return &markups{
		main: main,

		today:    today,
		tomorrow: tomorrow,
	}
}
