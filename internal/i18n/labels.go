package i18n

// Menu labels. A label sent back as text is recognized the same way as
// the slash command it stands for.

func SignUpLabel(lang string) string {
	if lang == Finnish {
		return "Ilmoittaudu"
	}
	return "Sign up"
}

func PartyInfoLabel(lang string) string {
	if lang == Finnish {
		return "Tapahtuman tiedot"
	}
	return "Party info"
}

func ChangeAvecLabel(lang string) string {
	if lang == Finnish {
		return "Vaihda avecin nimi"
	}
	return "Change +1 name"
}

func RemoveSignupLabel(lang string) string {
	if lang == Finnish {
		return "Peru ilmoittautuminen"
	}
	return "Remove signup"
}

func ExportLabel(lang string) string {
	if lang == Finnish {
		return "Vie CSV"
	}
	return "Export CSV"
}

func BroadcastLabel(lang string) string {
	if lang == Finnish {
		return "Lähetä kaikille"
	}
	return "Broadcast"
}

func YesNoLabels(lang string) (yes, no string) {
	if lang == Finnish {
		return "kyllä", "ei"
	}
	return "yes", "no"
}
