package email

import "strconv"

// SendWelcomeEmail greets a newly created user.
func (c *Client) SendWelcomeEmail(to, name string, userID int) error {
	data := map[string]string{
		"UserName": name,
		"UserID":   strconv.Itoa(userID),
	}

	return c.SendEmail(to, "Welcome to Health Tracker!", TemplateWelcome, data)
}
