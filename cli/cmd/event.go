package cmd

import (
	"context"
	"fmt"

	"github.com/anubhaparashar/mcp2/controller/api/eventbus"
	pb "github.com/anubhaparashar/mcp2/controller/gen/mcp"
	"github.com/spf13/cobra"
)

func newCmdEvent() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Publish and subscribe to fabric events",
	}
	cmd.AddCommand(newCmdEventPublish())
	cmd.AddCommand(newCmdEventSubscribe())
	return cmd
}

func newCmdEventPublish() *cobra.Command {
	var (
		token   string
		topic   string
		payload string
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish an event to a topic",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, conn, err := eventbus.NewClient(apiAddr)
			if err != nil {
				return err
			}
			defer conn.Close()

			resp, err := client.Publish(context.Background(), &pb.EventPublishRequest{
				Topic:          topic,
				Payload:        []byte(payload),
				PublisherToken: token,
			})
			if err != nil {
				return err
			}
			fmt.Println(resp.GetMessage())
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "publisher token covering event:publish:<topic>")
	cmd.Flags().StringVar(&topic, "topic", "", "topic to publish on")
	cmd.Flags().StringVar(&payload, "payload", "", "opaque event payload")
	cmd.MarkFlagRequired("token")
	cmd.MarkFlagRequired("topic")
	return cmd
}

func newCmdEventSubscribe() *cobra.Command {
	var (
		token  string
		filter string
	)

	cmd := &cobra.Command{
		Use:   "subscribe",
		Short: "Stream events matching a topic filter",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, conn, err := eventbus.NewClient(apiAddr)
			if err != nil {
				return err
			}
			defer conn.Close()

			stream, err := client.Subscribe(context.Background(), &pb.EventSubscribeRequest{
				TopicFilter:     filter,
				SubscriberToken: token,
			})
			if err != nil {
				return err
			}
			for {
				envelope, err := stream.Recv()
				if err != nil {
					return err
				}
				fmt.Printf("%s #%d %s\n", envelope.GetTopic(), envelope.GetSequenceId(), envelope.GetPayload())
			}
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "subscriber token covering event:subscribe:<filter>")
	cmd.Flags().StringVar(&filter, "filter", "", "topic filter to subscribe with")
	cmd.MarkFlagRequired("token")
	cmd.MarkFlagRequired("filter")
	return cmd
}
