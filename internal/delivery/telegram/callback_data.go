package telegram

import (
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionPrayer = "prayer"
	actionVerse  = "verse"
	actionLearn  = "learn"
	actionQuiz   = "quiz"
	actionDaily  = "daily"
	actionRemind = "remind"
)

// Quiz sub-actions.
const (
	quizStart  = "start"
	quizAnswer = "answer"
	quizNext   = "next"
	quizStop   = "stop"
)

const remindToggle = "toggle"

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// intParam returns the i-th parameter as an integer.
func (cd callbackData) intParam(i int) (int, bool) {
	if i < 0 || i >= len(cd.Params) {
		return 0, false
	}
	n, err := strconv.Atoi(cd.Params[i])
	if err != nil {
		return 0, false
	}
	return n, true
}

// buildPrayerCallback opens the prayer at 1-based index.
func buildPrayerCallback(prayerIndex int) string {
	return callbackData{
		Action: actionPrayer,
		Params: []string{strconv.Itoa(prayerIndex)},
	}.encode()
}

// buildVerseCallback opens the verse at position pos of all verses of a
// prayer. Positions are used instead of verse numbers so that dohas and
// main verses page in reading order.
func buildVerseCallback(prayerIndex, pos int) string {
	return callbackData{
		Action: actionVerse,
		Params: []string{strconv.Itoa(prayerIndex), strconv.Itoa(pos)},
	}.encode()
}

// buildLearnCallback marks a verse as learned.
func buildLearnCallback(prayerIndex, verseNumber int) string {
	return callbackData{
		Action: actionLearn,
		Params: []string{strconv.Itoa(prayerIndex), strconv.Itoa(verseNumber)},
	}.encode()
}

func buildQuizStartCallback(prayerIndex int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizStart, strconv.Itoa(prayerIndex)},
	}.encode()
}

func buildQuizAnswerCallback(option int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizAnswer, strconv.Itoa(option)},
	}.encode()
}

func buildQuizNextCallback() string {
	return callbackData{Action: actionQuiz, Params: []string{quizNext}}.encode()
}

func buildQuizStopCallback() string {
	return callbackData{Action: actionQuiz, Params: []string{quizStop}}.encode()
}

func buildDailyCallback() string {
	return actionDaily
}

func buildRemindToggleCallback() string {
	return callbackData{Action: actionRemind, Params: []string{remindToggle}}.encode()
}
