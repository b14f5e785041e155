package podio

import "github.com/adamwoolhether/podio/area"

func (c *Client) Application() *area.Application   { return area.NewApplication(c.Transport) }
func (c *Client) Comment() *area.Comment           { return area.NewComment(c.Transport) }
func (c *Client) Connection() *area.Connection     { return area.NewConnection(c.Transport) }
func (c *Client) Contact() *area.Contact           { return area.NewContact(c.Transport) }
func (c *Client) Conversation() *area.Conversation { return area.NewConversation(c.Transport) }
func (c *Client) Embed() *area.Embed               { return area.NewEmbed(c.Transport) }
func (c *Client) Files() *area.Files               { return area.NewFiles(c.Transport) }
func (c *Client) Hook() *area.Hook                 { return area.NewHook(c.Transport) }
func (c *Client) Item() *area.Item                 { return area.NewItem(c.Transport) }
func (c *Client) Notification() *area.Notification { return area.NewNotification(c.Transport) }
func (c *Client) Org() *area.Org                   { return area.NewOrg(c.Transport) }
func (c *Client) Search() *area.Search             { return area.NewSearch(c.Transport) }
func (c *Client) Space() *area.Space               { return area.NewSpace(c.Transport) }
func (c *Client) Status() *area.Status             { return area.NewStatus(c.Transport) }
func (c *Client) Stream() *area.Stream             { return area.NewStream(c.Transport) }
func (c *Client) Task() *area.Task                 { return area.NewTask(c.Transport) }
func (c *Client) User() *area.User                 { return area.NewUser(c.Transport) }
func (c *Client) View() *area.View                 { return area.NewView(c.Transport) }
